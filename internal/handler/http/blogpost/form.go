// Package blogpost provides the HTTP handlers of the blog CMS. Create and
// update take multipart forms so an image can be uploaded with the post.
package blogpost

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"news-website/internal/domain/entity"
	"news-website/internal/observability/metrics"
	postUC "news-website/internal/usecase/blogpost"
)

// MaxFormBytes bounds a whole multipart request: the image plus the text fields.
const MaxFormBytes = postUC.MaxImageBytes + 1<<20

var (
	errTagsFormat   = errors.New("invalid tags format")
	errAuthorFormat = errors.New("invalid author format")
)

// parseForm reads the post fields from a multipart or urlencoded body.
func parseForm(w http.ResponseWriter, r *http.Request) (postUC.Input, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxFormBytes)
	if err := r.ParseMultipartForm(MaxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return postUC.Input{}, err
	}

	in := postUC.Input{
		Title:       r.FormValue("title"),
		Content:     r.FormValue("content"),
		Subtitle:    r.FormValue("subtitle"),
		ReadingTime: r.FormValue("readingTime"),
	}
	if raw := strings.TrimSpace(r.FormValue("tags")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Tags); err != nil {
			return postUC.Input{}, errTagsFormat
		}
	}
	if raw := strings.TrimSpace(r.FormValue("author")); raw != "" {
		var a entity.PostAuthor
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			return postUC.Input{}, errAuthorFormat
		}
		in.Author = &a
	}

	img, err := readImage(r)
	if err != nil {
		return postUC.Input{}, err
	}
	in.Image = img
	return in, nil
}

// readImage returns nil when no image part was sent.
func readImage(r *http.Request) (*postUC.Image, error) {
	f, hdr, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, postUC.MaxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > postUC.MaxImageBytes {
		return nil, postUC.ErrImageTooLarge
	}
	if len(data) == 0 {
		return nil, nil
	}

	ct := hdr.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(data)
	}
	metrics.RecordBlogImage(len(data))
	return &postUC.Image{ContentType: ct, Data: data}, nil
}

type idResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}
