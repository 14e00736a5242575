package repository

import (
	"context"

	"smartethnic/internal/domain/entity"
)

type UserRepository interface {
	// Create writes the user at users/{email} only if no document exists
	// there yet; a concurrent signup for the same email loses with a
	// conflict instead of silently overwriting.
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update overwrites the whole document; callers pass the fully merged
	// record.
	Update(ctx context.Context, user *entity.User) error
	PhoneExists(ctx context.Context, phone string) (bool, error)
}
