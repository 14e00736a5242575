package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"smartethnic/internal/domain/entity"
	"smartethnic/internal/domain/repository"
	"smartethnic/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) ListCollections(ctx context.Context) ([]*entity.Collection, error) {
	iter := r.client.Collection("collections").Documents(ctx)
	defer iter.Stop()

	var collections []*entity.Collection
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list collections", err)
		}

		var col entity.Collection
		if err := doc.DataTo(&col); err != nil {
			return nil, errors.Internal("Failed to parse collection", err)
		}
		col.ID = doc.Ref.ID
		collections = append(collections, &col)
	}

	return collections, nil
}

func (r *firestoreProductRepository) ListByCollection(ctx context.Context, collectionID string, limit int) ([]*entity.Product, error) {
	query := r.client.Collection("collections").Doc(collectionID).Collection("products").
		OrderBy("name", firestore.Asc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product", err)
		}
		product.ID = doc.Ref.ID
		product.CollectionID = collectionID
		products = append(products, &product)
	}

	return products, nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, productID string) (*entity.Product, error) {
	// There is no global product index; try each collection until one holds
	// the document.
	collections, err := r.ListCollections(ctx)
	if err != nil {
		return nil, err
	}

	for _, col := range collections {
		doc, err := r.client.Collection("collections").Doc(col.ID).
			Collection("products").Doc(productID).Get(ctx)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return nil, errors.Internal("Failed to load product", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product", err)
		}
		product.ID = doc.Ref.ID
		product.CollectionID = col.ID
		return &product, nil
	}

	return nil, errors.NotFound("Product", nil)
}
