package repository

import (
	"context"

	"smartethnic/internal/domain/entity"
)

type CartRepository interface {
	// Get returns (nil, nil) when the user has no cart document.
	Get(ctx context.Context, email string) (*entity.Cart, error)
	// Save overwrites the whole cart document, not a field-level merge.
	Save(ctx context.Context, email string, cart *entity.Cart) error
	Delete(ctx context.Context, email string) error
}
