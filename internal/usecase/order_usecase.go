package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"smartethnic/internal/domain/entity"
	"smartethnic/internal/domain/repository"
	"smartethnic/pkg/errors"
	"smartethnic/pkg/logger"
)

// OrderUseCase materializes a cart snapshot plus a confirmed delivery address
// into a persisted order.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	cart      *CartUseCase
}

func NewOrderUseCase(orderRepo repository.OrderRepository, cart *CartUseCase) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		cart:      cart,
	}
}

type AddressInput struct {
	Address string
	Phone   string
	PinCode string
}

// PlaceOrder snapshots the cart as immutable order line items and writes both
// order copies in one transaction. With no active user or an empty cart it
// fails without touching the store. The pricing summary is computed by the
// checkout caller and recorded as passed. Clearing the cart afterwards is the
// caller's responsibility.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, user *entity.User, addr AddressInput, pricing entity.Pricing) (*entity.Order, error) {
	if user == nil {
		return nil, errors.Unauthorized("No active user", nil)
	}

	items, err := uc.cart.Items(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	orderID := generateOrderID(user.FirstName)

	orderItems := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, entity.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Image:     it.Image,
			Category:  it.Category,
			Size:      it.Size,
			Quantity:  it.Quantity,
			Total:     it.Price * int64(it.Quantity),
		})
	}

	now := time.Now()
	order := &entity.Order{
		OrderID: orderID,
		Customer: entity.OrderCustomer{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Phone:     addr.Phone,
			Address:   addr.Address,
			PinCode:   addr.PinCode,
		},
		Items:     orderItems,
		Pricing:   pricing,
		Status:    entity.OrderStatusPlaced,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order %s placed for %s (%d items, total %d)", orderID, user.Email, len(orderItems), pricing.Total)
	return order, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, email string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByUser(ctx, email)
}

func (uc *OrderUseCase) GetUserOrder(ctx context.Context, email, orderID string) (*entity.Order, error) {
	return uc.orderRepo.GetUserOrder(ctx, email, orderID)
}

// GetOrder reads the global copy; used by the admin side.
func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	return uc.orderRepo.GetByID(ctx, orderID)
}

// UpdateStatus transitions both order copies; admin-only.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !entity.ValidOrderStatus(status) {
		return errors.BadRequest("Invalid order status", nil)
	}
	return uc.orderRepo.UpdateStatus(ctx, orderID, status)
}

// generateOrderID derives a human-readable ID from the purchaser's first
// name: up to 4 upper-cased characters plus 5 random digits. Uniqueness is
// probabilistic and not checked against existing orders.
func generateOrderID(firstName string) string {
	prefix := firstName
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	return fmt.Sprintf("%s%d", strings.ToUpper(prefix), 10000+rand.Intn(90000))
}
