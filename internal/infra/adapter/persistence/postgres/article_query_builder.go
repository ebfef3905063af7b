// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"news-website/internal/domain/entity"
)

// ArticleQueryBuilder builds WHERE clauses for article listings with numbered
// placeholders ($1, $2, ...).
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause returns the WHERE clause for f and its arguments, or an
// empty clause when f has no conditions.
func (qb *ArticleQueryBuilder) BuildWhereClause(f entity.ArticleFilter) (clause string, args []any) {
	var conditions []string

	if f.Category != "" {
		args = append(args, f.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.ExcludeID != "" {
		args = append(args, f.ExcludeID)
		conditions = append(conditions, fmt.Sprintf("id <> $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
