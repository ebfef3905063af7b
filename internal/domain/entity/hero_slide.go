package entity

import "time"

// HeroSlide is a carousel entry on the landing page.
type HeroSlide struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Tagline     string    `json:"tagline"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CTALabel    string    `json:"ctaLabel"`
	CTALink     string    `json:"ctaLink"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
