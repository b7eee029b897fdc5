package models

import "time"

// CartItem is a denormalised snapshot of a product at the time it was added.
type CartItem struct {
	ID       string  `json:"_id" bson:"_id"`
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
	ImageURL string  `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Unit     string  `json:"unit,omitempty" bson:"unit,omitempty"`
}

// Cart is the per-user server copy. One document per userId.
type Cart struct {
	UserID    string     `json:"userId" bson:"userId"`
	Items     []CartItem `json:"items" bson:"items"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
