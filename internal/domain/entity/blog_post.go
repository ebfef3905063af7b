package entity

import "time"

// BlogPost is an editorial post managed from the blog CMS.
// Image holds a data URI ("data:<type>;base64,...") when an image was uploaded.
type BlogPost struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	Tags        []string    `json:"tags"`
	Image       string      `json:"image,omitempty"`
	Subtitle    string      `json:"subtitle,omitempty"`
	Author      *PostAuthor `json:"author,omitempty"`
	ReadingTime string      `json:"readingTime,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   *time.Time  `json:"updatedAt,omitempty"`
}

// PostAuthor is the optional byline of a blog post.
type PostAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Comment is a reader comment attached to a blog post.
// BlogPostID is stored as given; the referenced post is not checked.
type Comment struct {
	ID         string     `json:"_id"`
	BlogPostID string     `json:"blogPostId"`
	Author     string     `json:"author"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}
