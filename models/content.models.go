package models

import "time"

// Testimonial is an admin-managed customer quote shown on the public site
type Testimonial struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Rating  int    `bson:"rating" json:"rating"`
	Comment string `bson:"comment" json:"comment"`
	Image   string `bson:"image,omitempty" json:"image,omitempty"`
}

// GalleryImage is an admin-managed photo in the public gallery
type GalleryImage struct {
	ID          string `bson:"id" json:"id"`
	URL         string `bson:"url" json:"url"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Banner is a homepage hero banner; only active banners appear publicly,
// ordered by Order ascending
type Banner struct {
	ID          string    `bson:"id" json:"id"`
	Image       string    `bson:"image" json:"image"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	ButtonText  string    `bson:"button_text" json:"button_text"`
	ButtonLink  string    `bson:"button_link" json:"button_link"`
	Order       int       `bson:"order" json:"order"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
