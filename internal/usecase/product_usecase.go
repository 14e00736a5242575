package usecase

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"smartethnic/internal/domain/entity"
	"smartethnic/internal/domain/repository"
)

const (
	defaultProductLimit   = 50
	featuredPerCollection = 5
	featuredTotal         = 10
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

func (uc *ProductUseCase) ListCollections(ctx context.Context) ([]*entity.Collection, error) {
	return uc.productRepo.ListCollections(ctx)
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, collectionID string, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = defaultProductLimit
	}
	return uc.productRepo.ListByCollection(ctx, collectionID, limit)
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, productID)
}

// TopProducts draws a few products from every collection concurrently and
// returns up to ten of them for the featured strip.
func (uc *ProductUseCase) TopProducts(ctx context.Context) ([]*entity.Product, error) {
	collections, err := uc.productRepo.ListCollections(ctx)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	byCollection := make(map[string][]*entity.Product, len(collections))

	g, gctx := errgroup.WithContext(ctx)
	for _, col := range collections {
		col := col
		g.Go(func() error {
			products, err := uc.productRepo.ListByCollection(gctx, col.ID, featuredPerCollection)
			if err != nil {
				return err
			}
			mu.Lock()
			byCollection[col.ID] = products
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stable order: collections as listed, products as fetched.
	var featured []*entity.Product
	for _, col := range collections {
		featured = append(featured, byCollection[col.ID]...)
		if len(featured) >= featuredTotal {
			break
		}
	}
	if len(featured) > featuredTotal {
		featured = featured[:featuredTotal]
	}
	return featured, nil
}
