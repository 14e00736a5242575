package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"smartethnic/internal/domain/entity"
	"smartethnic/internal/domain/repository"
	"smartethnic/pkg/errors"
)

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

// The whole cart lives in a single document: users/{email}/cart/items.
func (r *firestoreCartRepository) docRef(email string) *firestore.DocumentRef {
	return r.client.Collection("users").Doc(email).Collection("cart").Doc("items")
}

func (r *firestoreCartRepository) Get(ctx context.Context, email string) (*entity.Cart, error) {
	doc, err := r.docRef(email).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, errors.Internal("Failed to load cart", err)
	}

	var cart entity.Cart
	if err := doc.DataTo(&cart); err != nil {
		return nil, errors.Internal("Failed to parse cart", err)
	}

	return &cart, nil
}

func (r *firestoreCartRepository) Save(ctx context.Context, email string, cart *entity.Cart) error {
	_, err := r.docRef(email).Set(ctx, cart)
	if err != nil {
		return errors.Internal("Failed to save cart", err)
	}
	return nil
}

func (r *firestoreCartRepository) Delete(ctx context.Context, email string) error {
	// Deleting an absent document is not an error; an empty cart is the
	// absence of the document.
	_, err := r.docRef(email).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete cart", err)
	}
	return nil
}
