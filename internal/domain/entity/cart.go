package entity

import (
	"time"
)

// DefaultSize is the size recorded for products without size variants.
const DefaultSize = "Default"

// CartItem is a single line item. Its identity within a cart is the
// (ProductID, Size) pair; the same product in two sizes is two line items.
type CartItem struct {
	ProductID string `json:"product_id" firestore:"productId"`
	Name      string `json:"name" firestore:"name"`
	Price     int64  `json:"price" firestore:"price"`
	Image     string `json:"image" firestore:"image"`
	Category  string `json:"category" firestore:"category"`
	Size      string `json:"size" firestore:"size"`
	Quantity  int    `json:"quantity" firestore:"quantity"`
}

// Cart is the remote document at users/{email}/cart/items. An empty cart is
// represented by the absence of the document, never by an empty Items slice.
type Cart struct {
	Items     []CartItem `json:"items" firestore:"items"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
}
