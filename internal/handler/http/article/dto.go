// Package article provides the HTTP handlers of the public article pages
// and the admin article form.
package article

import (
	"time"

	"news-website/internal/domain/entity"
)

// ListItem is the projection returned by the article list.
type ListItem struct {
	ID            string    `json:"_id" example:"65f0c0ffee0000000000abcd"`
	Title         string    `json:"title" example:"IPO market heats up"`
	Content       string    `json:"content"`
	Category      string    `json:"category" example:"ipo"`
	PublishedDate time.Time `json:"published_date" example:"2025-10-26T10:00:00Z"`
	Source        string    `json:"source" example:"https://example.com/ipo"`
	Image         string    `json:"image"`
}

func toListItem(a *entity.Article) ListItem {
	return ListItem{
		ID:            a.ID,
		Title:         a.Title,
		Content:       a.Content,
		Category:      a.Category,
		PublishedDate: a.PublishedDate,
		Source:        a.Source,
		Image:         a.Image,
	}
}

type createResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

type reactionRequest struct {
	ArticleID string `json:"articleId"`
	Action    string `json:"action"`
}
