// Package entity defines the core domain entities and validation logic for the application.
// It contains the content records served by the public site (articles, blog posts, comments,
// hero slides) and the scraping configuration managed from the admin dashboard.
package entity

import "time"

// Article represents a news article entity in the system.
// Articles are created from the admin dashboard or inserted by the scrape worker.
type Article struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	PublishedDate time.Time `json:"published_date"`
	Source        string    `json:"source"`
	Image         string    `json:"image"`
	Author        string    `json:"author,omitempty"`
	Slug          string    `json:"slug,omitempty"`
	Summary       string    `json:"summary,omitempty"`
	Likes         int64     `json:"likes"`
	Bookmarks     int64     `json:"bookmarks"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ArticleFilter narrows article listings.
type ArticleFilter struct {
	Category  string
	ExcludeID string
	Limit     int
}

// Counter fields that readers can adjust anonymously.
const (
	CounterLikes     = "likes"
	CounterBookmarks = "bookmarks"
)
