package entity

import (
	"time"
)

const (
	OrderStatusPlaced    = "Placed"
	OrderStatusAccepted  = "Accepted"
	OrderStatusDelivered = "Delivered"
)

// Free shipping applies strictly above the threshold; a subtotal of exactly
// 999 still pays the fee.
const (
	FreeShippingThreshold = 999
	ShippingFee           = 99
)

// OrderCustomer is the denormalized purchaser snapshot embedded in an order.
type OrderCustomer struct {
	ID        string `json:"id" firestore:"id"`
	FirstName string `json:"first_name" firestore:"firstName"`
	LastName  string `json:"last_name,omitempty" firestore:"lastName,omitempty"`
	Email     string `json:"email" firestore:"email"`
	Phone     string `json:"phone" firestore:"phone"`
	Address   string `json:"address" firestore:"address"`
	PinCode   string `json:"pin_code" firestore:"pinCode"`
}

type OrderItem struct {
	ProductID string `json:"product_id" firestore:"productId"`
	Name      string `json:"name" firestore:"name"`
	Price     int64  `json:"price" firestore:"price"`
	Image     string `json:"image" firestore:"image"`
	Category  string `json:"category" firestore:"category"`
	Size      string `json:"size" firestore:"size"`
	Quantity  int    `json:"quantity" firestore:"quantity"`
	Total     int64  `json:"total" firestore:"total"`
}

type Pricing struct {
	Subtotal int64 `json:"subtotal" firestore:"subtotal"`
	Shipping int64 `json:"shipping" firestore:"shipping"`
	Total    int64 `json:"total" firestore:"total"`
}

// Order is written identically to users/{email}/orders/{orderId} and to the
// global orders/{orderId} collection. It is never mutated by the storefront
// after creation; status transitions come from the admin side.
type Order struct {
	OrderID   string        `json:"order_id" firestore:"orderId"`
	Customer  OrderCustomer `json:"customer" firestore:"user"`
	Items     []OrderItem   `json:"items" firestore:"items"`
	Pricing   Pricing       `json:"pricing" firestore:"pricing"`
	Status    string        `json:"status" firestore:"status"`
	CreatedAt time.Time     `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time     `json:"updated_at" firestore:"updatedAt"`
}

// ComputePricing derives the checkout pricing summary from a cart subtotal.
func ComputePricing(subtotal int64) Pricing {
	shipping := int64(ShippingFee)
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	return Pricing{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

// ValidOrderStatus reports whether s is a status the admin side may set.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPlaced, OrderStatusAccepted, OrderStatusDelivered:
		return true
	}
	return false
}
