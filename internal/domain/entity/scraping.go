package entity

import "time"

// Category groups articles on the public site and drives keyword matching in the scraper.
type Category struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Keyword is a single matching term, optionally bound to a category.
type Keyword struct {
	ID        string    `json:"_id"`
	Word      string    `json:"word"`
	Category  string    `json:"category,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SourceURL is a site registered in the admin dashboard as a content source.
type SourceURL struct {
	ID        string    `json:"_id"`
	URL       string    `json:"url"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScrapConfig tells the scrape worker which source to crawl, which keywords
// select an item and which category matched items are filed under.
type ScrapConfig struct {
	ID        string     `json:"_id"`
	Category  string     `json:"category"`
	Keywords  []string   `json:"keywords"`
	SourceURL string     `json:"sourceUrl"`
	IsActive  bool       `json:"isActive"`
	LastRunAt *time.Time `json:"lastRunAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
