// Package pathutil extracts identifiers from request paths and normalizes
// paths for metric labels.
package pathutil

import (
	"net/http"
	"strings"

	"news-website/internal/domain/entity"
)

// ObjectID returns the path value name when it is a 24-char hex ObjectId.
// Anything else yields entity.ErrInvalidID so handlers can answer 400.
func ObjectID(r *http.Request, name string) (string, error) {
	id := strings.TrimSpace(r.PathValue(name))
	if !entity.IsValidID(id) {
		return "", entity.ErrInvalidID
	}
	return id, nil
}
