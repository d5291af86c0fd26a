package models

import "time"

// MenuType values for MenuItem.MenuType.
const (
	MenuTypeDineIn   = "dine-in"
	MenuTypeTakeaway = "takeaway"
)

// MenuItem represents a dish on the restaurant's menu
type MenuItem struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Category    string    `bson:"category" json:"category"`
	MenuType    string    `bson:"menu_type" json:"menu_type"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	Featured    bool      `bson:"featured" json:"featured"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
