package models

import "time"

// Order status values. Transitions are not enforced; the admin may set any of these.
const (
	StatusPending        = "Pending"
	StatusConfirmed      = "Confirmed"
	StatusPreparing      = "Preparing"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

// OrderItem is a line in an online order. Name and Price are supplied by the
// client along with the totals and are carried verbatim so notification emails
// can show an itemized breakdown without a menu lookup.
type OrderItem struct {
	MenuItemID string  `bson:"menu_item_id" json:"menu_item_id"`
	Name       string  `bson:"name,omitempty" json:"name,omitempty"`
	Price      float64 `bson:"price,omitempty" json:"price,omitempty"`
	Quantity   int     `bson:"quantity" json:"quantity"`
}

// Order is an online order. All amounts are client-computed and stored as given.
type Order struct {
	ID              string      `bson:"id" json:"id"`
	OrderID         string      `bson:"order_id" json:"order_id"`
	CustomerName    string      `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string      `bson:"customer_email" json:"customer_email"`
	CustomerPhone   string      `bson:"customer_phone" json:"customer_phone"`
	DeliveryAddress string      `bson:"delivery_address" json:"delivery_address"`
	Items           []OrderItem `bson:"items" json:"items"`
	Subtotal        float64     `bson:"subtotal" json:"subtotal"`
	Tax             float64     `bson:"tax" json:"tax"`
	DeliveryFee     float64     `bson:"delivery_fee" json:"delivery_fee"`
	Total           float64     `bson:"total" json:"total"`
	PaymentMethod   string      `bson:"payment_method" json:"payment_method"`
	Status          string      `bson:"status" json:"status"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
}
