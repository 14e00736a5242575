package usecase

import (
	"context"
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartethnic/internal/domain/entity"
)

type mockOrderRepo struct {
	mu      sync.Mutex
	created []*entity.Order
	byID    map[string]*entity.Order
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{byID: make(map[string]*entity.Order)}
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, order)
	m.byID[order.OrderID] = order
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, orderID string) (*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[orderID], nil
}

func (m *mockOrderRepo) GetUserOrder(ctx context.Context, email, orderID string) (*entity.Order, error) {
	return m.GetByID(ctx, orderID)
}

func (m *mockOrderRepo) ListByUser(ctx context.Context, email string) ([]*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.byID[orderID]; ok {
		o.Status = status
	}
	return nil
}

func (m *mockOrderRepo) createCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}

var orderIDPattern = regexp.MustCompile(`^[A-Z]{1,4}(\d{5})$`)

func testUser() *entity.User {
	return &entity.User{
		ID:        "user-1",
		FirstName: "Priya",
		LastName:  "Sharma",
		Email:     "priya@example.com",
		Phone:     "9876543210",
	}
}

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	cartRepo := &mockCartRepo{}
	cartUC := NewCartUseCase(cartRepo, time.Hour)
	orderRepo := newMockOrderRepo()
	uc := NewOrderUseCase(orderRepo, cartUC)
	ctx := context.Background()

	require.NoError(t, cartUC.AddItem(ctx, "priya@example.com", kurta("M")))
	require.NoError(t, cartUC.SetQuantity(ctx, "priya@example.com", "prod-1", "M", 2))

	pricing := entity.ComputePricing(2499 * 2)
	addr := AddressInput{Address: "12 MG Road, Pune", Phone: "9000000000", PinCode: "411001"}

	order, err := uc.PlaceOrder(ctx, testUser(), addr, pricing)
	require.NoError(t, err)

	assert.Regexp(t, orderIDPattern, order.OrderID)
	assert.Equal(t, "PRIY", order.OrderID[:4])

	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(2499*2), order.Items[0].Total)
	assert.Equal(t, 2, order.Items[0].Quantity)

	assert.Equal(t, entity.OrderStatusPlaced, order.Status)
	assert.Equal(t, pricing, order.Pricing)

	// Delivery details come from the confirmed address, not the profile.
	assert.Equal(t, "9000000000", order.Customer.Phone)
	assert.Equal(t, "12 MG Road, Pune", order.Customer.Address)
	assert.Equal(t, "priya@example.com", order.Customer.Email)

	assert.Equal(t, 1, orderRepo.createCount())
}

func TestPlaceOrderEmptyCartFailsWithoutWriting(t *testing.T) {
	cartRepo := &mockCartRepo{}
	cartUC := NewCartUseCase(cartRepo, time.Hour)
	orderRepo := newMockOrderRepo()
	uc := NewOrderUseCase(orderRepo, cartUC)

	_, err := uc.PlaceOrder(context.Background(), testUser(), AddressInput{}, entity.Pricing{})
	require.Error(t, err)
	assert.Equal(t, 0, orderRepo.createCount())
}

func TestPlaceOrderNilUserFails(t *testing.T) {
	cartUC := NewCartUseCase(&mockCartRepo{}, time.Hour)
	orderRepo := newMockOrderRepo()
	uc := NewOrderUseCase(orderRepo, cartUC)

	_, err := uc.PlaceOrder(context.Background(), nil, AddressInput{}, entity.Pricing{})
	require.Error(t, err)
	assert.Equal(t, 0, orderRepo.createCount())
}

func TestGenerateOrderID(t *testing.T) {
	id := generateOrderID("Priya")
	m := orderIDPattern.FindStringSubmatch(id)
	require.NotNil(t, m, "unexpected order id %q", id)
	assert.Equal(t, "PRIY", id[:4])

	n, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 10000)
	assert.LessOrEqual(t, n, 99999)

	short := generateOrderID("Al")
	assert.Regexp(t, `^AL\d{5}$`, short)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc := NewOrderUseCase(newMockOrderRepo(), NewCartUseCase(&mockCartRepo{}, time.Hour))

	err := uc.UpdateStatus(context.Background(), "PRIY12345", "Shipped")
	require.Error(t, err)
}

func TestUpdateStatusTransitions(t *testing.T) {
	orderRepo := newMockOrderRepo()
	orderRepo.byID["PRIY12345"] = &entity.Order{OrderID: "PRIY12345", Status: entity.OrderStatusPlaced}
	uc := NewOrderUseCase(orderRepo, NewCartUseCase(&mockCartRepo{}, time.Hour))

	require.NoError(t, uc.UpdateStatus(context.Background(), "PRIY12345", entity.OrderStatusAccepted))

	order, err := uc.GetOrder(context.Background(), "PRIY12345")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, order.Status)
}
