package entity

import (
	"time"
)

type User struct {
	ID        string    `json:"id" firestore:"id"`
	FirstName string    `json:"first_name" firestore:"firstName"`
	LastName  string    `json:"last_name,omitempty" firestore:"lastName,omitempty"`
	Email     string    `json:"email" firestore:"email"`
	Phone     string    `json:"phone" firestore:"phone"`
	Address   string    `json:"address,omitempty" firestore:"address,omitempty"`
	PinCode   string    `json:"pin_code,omitempty" firestore:"pinCode,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
