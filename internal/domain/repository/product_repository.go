package repository

import (
	"context"

	"smartethnic/internal/domain/entity"
)

type ProductRepository interface {
	ListCollections(ctx context.Context) ([]*entity.Collection, error)
	ListByCollection(ctx context.Context, collectionID string, limit int) ([]*entity.Product, error)
	// GetByID scans the known collections for the product; the catalog has
	// no global product index.
	GetByID(ctx context.Context, productID string) (*entity.Product, error)
}
