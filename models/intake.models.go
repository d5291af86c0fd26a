package models

import "time"

// ContactForm is a public contact-page submission; append-only
type ContactForm struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Reservation is a public table-reservation submission; append-only
type Reservation struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone" json:"phone"`
	Date            string    `bson:"date" json:"date"`
	Time            string    `bson:"time" json:"time"`
	Guests          int       `bson:"guests" json:"guests"`
	SpecialRequests string    `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
