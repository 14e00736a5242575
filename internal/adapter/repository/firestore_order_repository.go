package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"smartethnic/internal/domain/entity"
	"smartethnic/internal/domain/repository"
	"smartethnic/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) userOrderRef(email, orderID string) *firestore.DocumentRef {
	return r.client.Collection("users").Doc(email).Collection("orders").Doc(orderID)
}

func (r *firestoreOrderRepository) globalOrderRef(orderID string) *firestore.DocumentRef {
	return r.client.Collection("orders").Doc(orderID)
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	userRef := r.userOrderRef(order.Customer.Email, order.OrderID)
	globalRef := r.globalOrderRef(order.OrderID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(userRef, order); err != nil {
			return err
		}
		return tx.Create(globalRef, order)
	})
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("An order with this ID already exists")
		}
		return errors.Internal("Failed to save order", err)
	}
	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, orderID string) (*entity.Order, error) {
	doc, err := r.globalOrderRef(orderID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to load order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order", err)
	}
	return &order, nil
}

func (r *firestoreOrderRepository) GetUserOrder(ctx context.Context, email, orderID string) (*entity.Order, error) {
	doc, err := r.userOrderRef(email, orderID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to load order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order", err)
	}
	return &order, nil
}

func (r *firestoreOrderRepository) ListByUser(ctx context.Context, email string) ([]*entity.Order, error) {
	query := r.client.Collection("users").Doc(email).Collection("orders").
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var orders []*entity.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}

func (r *firestoreOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	globalRef := r.globalOrderRef(orderID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(globalRef)
		if err != nil {
			return err
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return err
		}

		updates := []firestore.Update{
			{Path: "status", Value: status},
			{Path: "updatedAt", Value: time.Now()},
		}
		if err := tx.Update(globalRef, updates); err != nil {
			return err
		}
		return tx.Update(r.userOrderRef(order.Customer.Email, orderID), updates)
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Order", err)
		}
		return errors.Internal("Failed to update order status", err)
	}
	return nil
}
