package models

import "time"

// CartItem represents a line in a visitor's cart
type CartItem struct {
	MenuItemID string `bson:"menu_item_id" json:"menu_item_id"`
	Quantity   int    `bson:"quantity" json:"quantity"`
}

// Cart represents a visitor's shopping cart, keyed by the caller-supplied user id
type Cart struct {
	ID        string     `bson:"id" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Items     []CartItem `bson:"items" json:"items"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// Wishlist holds a visitor's saved menu items as a set of item ids
type Wishlist struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	MenuItemIDs []string  `bson:"menu_item_ids" json:"menu_item_ids"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
