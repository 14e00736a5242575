package repository

import (
	"context"

	"smartethnic/internal/domain/entity"
)

type OrderRepository interface {
	// Create writes both order copies (per-user subcollection and global
	// collection) in a single transaction; either both land or neither does.
	Create(ctx context.Context, order *entity.Order) error
	// GetByID reads the global copy.
	GetByID(ctx context.Context, orderID string) (*entity.Order, error)
	GetUserOrder(ctx context.Context, email, orderID string) (*entity.Order, error)
	ListByUser(ctx context.Context, email string) ([]*entity.Order, error)
	// UpdateStatus transitions both copies together.
	UpdateStatus(ctx context.Context, orderID, status string) error
}
