package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartethnic/internal/domain/entity"
)

type mockCartRepo struct {
	mu      sync.Mutex
	stored  *entity.Cart
	getErr  error
	gets    int
	saves   int
	deletes int
}

func (m *mockCartRepo) Get(ctx context.Context, email string) (*entity.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.stored == nil {
		return nil, nil
	}
	cart := *m.stored
	return &cart, nil
}

func (m *mockCartRepo) Save(ctx context.Context, email string, cart *entity.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	m.stored = cart
	return nil
}

func (m *mockCartRepo) Delete(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	m.stored = nil
	return nil
}

func (m *mockCartRepo) counts() (gets, saves, deletes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gets, m.saves, m.deletes
}

func (m *mockCartRepo) storedCart() *entity.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stored
}

func kurta(size string) entity.CartItem {
	return entity.CartItem{
		ProductID: "prod-1",
		Name:      "Chikankari Kurta",
		Price:     2499,
		Category:  "kurtas",
		Size:      size,
	}
}

func TestAddItemMergesOnProductAndSize(t *testing.T) {
	repo := &mockCartRepo{}
	uc := NewCartUseCase(repo, time.Hour)
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("M")))
	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("M")))
	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("M")))
	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("L")))

	items, err := uc.Items(ctx, "a@b.com")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "M", items[0].Size)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, "L", items[1].Size)
}

func TestAddItemDefaultsSize(t *testing.T) {
	repo := &mockCartRepo{}
	uc := NewCartUseCase(repo, time.Hour)
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("")))
	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta(entity.DefaultSize)))

	items, err := uc.Items(ctx, "a@b.com")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entity.DefaultSize, items[0].Size)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	repo := &mockCartRepo{}
	uc := NewCartUseCase(repo, time.Hour)
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("M")))
	require.NoError(t, uc.SetQuantity(ctx, "a@b.com", "prod-1", "M", 0))

	items, err := uc.Items(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSetQuantityUnknownPairIsNoOp(t *testing.T) {
	repo := &mockCartRepo{}
	uc := NewCartUseCase(repo, time.Hour)
	ctx := context.Background()

	require.NoError(t, uc.Attach(ctx, "a@b.com"))
	require.NoError(t, uc.SetQuantity(ctx, "a@b.com", "prod-1", "M", 5))

	uc.Flush("a@b.com")
	_, saves, deletes := repo.counts()
	assert.Equal(t, 0, saves)
	assert.Equal(t, 0, deletes)
}

func TestTotals(t *testing.T) {
	repo := &mockCartRepo{}
	uc := NewCartUseCase(repo, time.Hour)
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("M")))
	require.NoError(t, uc.SetQuantity(ctx, "a@b.com", "prod-1", "M", 2))
	require.NoError(t, uc.AddItem(ctx, "a@b.com", entity.CartItem{
		ProductID: "prod-2",
		Name:      "Banarasi Dupatta",
		Price:     1899,
		Size:      "Default",
	}))

	totalItems, err := uc.TotalItems(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, 3, totalItems)

	totalPrice, err := uc.TotalPrice(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2499*2+1899), totalPrice)
}

func TestDebounceCoalescesBurstIntoOneWrite(t *testing.T) {
	repo := &mockCartRepo{}
	uc := NewCartUseCase(repo, 30*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("M")))
	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("M")))
	require.NoError(t, uc.SetQuantity(ctx, "a@b.com", "prod-1", "M", 5))

	time.Sleep(200 * time.Millisecond)

	_, saves, _ := repo.counts()
	assert.Equal(t, 1, saves)

	stored := repo.storedCart()
	require.NotNil(t, stored)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 5, stored.Items[0].Quantity)
}

func TestEmptyCartDeletesDocumentInsteadOfSavingEmptyList(t *testing.T) {
	repo := &mockCartRepo{}
	uc := NewCartUseCase(repo, time.Hour)
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("M")))
	uc.Flush("a@b.com")
	require.NoError(t, uc.RemoveItem(ctx, "a@b.com", "prod-1", "M"))
	uc.Flush("a@b.com")

	_, saves, deletes := repo.counts()
	assert.Equal(t, 1, saves)
	assert.Equal(t, 1, deletes)
	assert.Nil(t, repo.storedCart())
}

func TestClearDeletesRemoteDocumentImmediately(t *testing.T) {
	repo := &mockCartRepo{}
	uc := NewCartUseCase(repo, time.Hour)
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("M")))
	require.NoError(t, uc.Clear(ctx, "a@b.com"))

	_, _, deletes := repo.counts()
	assert.Equal(t, 1, deletes)

	items, err := uc.Items(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDetachCancelsPendingWrite(t *testing.T) {
	repo := &mockCartRepo{}
	uc := NewCartUseCase(repo, 30*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("M")))
	uc.Detach("a@b.com")

	time.Sleep(100 * time.Millisecond)

	_, saves, deletes := repo.counts()
	assert.Equal(t, 0, saves)
	assert.Equal(t, 0, deletes)
}

func TestAttachLoadsRemoteDocumentOnce(t *testing.T) {
	repo := &mockCartRepo{stored: &entity.Cart{
		Items: []entity.CartItem{kurta("M")},
	}}
	uc := NewCartUseCase(repo, time.Hour)
	ctx := context.Background()

	require.NoError(t, uc.Attach(ctx, "a@b.com"))
	require.NoError(t, uc.Attach(ctx, "a@b.com"))

	items, err := uc.Items(ctx, "a@b.com")
	require.NoError(t, err)
	require.Len(t, items, 1)

	gets, _, _ := repo.counts()
	assert.Equal(t, 1, gets)
}

func TestMutationsSurviveConcurrentDetach(t *testing.T) {
	repo := &mockCartRepo{}
	uc := NewCartUseCase(repo, time.Hour)
	ctx := context.Background()

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					uc.Detach("a@b.com")
				}
			}
		}()
	}

	// Two tabs for the same user: one keeps editing while the other logs
	// out. A vanished aggregate must degrade to a no-op, never a panic.
	for i := 0; i < 500; i++ {
		require.NoError(t, uc.AddItem(ctx, "a@b.com", kurta("M")))
		require.NoError(t, uc.SetQuantity(ctx, "a@b.com", "prod-1", "M", 2))
		require.NoError(t, uc.RemoveItem(ctx, "a@b.com", "prod-1", "M"))
		_, err := uc.Items(ctx, "a@b.com")
		require.NoError(t, err)
	}

	close(done)
	wg.Wait()
}

func TestAttachLoadFailureStartsEmpty(t *testing.T) {
	repo := &mockCartRepo{getErr: errors.New("unavailable")}
	uc := NewCartUseCase(repo, time.Hour)
	ctx := context.Background()

	require.NoError(t, uc.Attach(ctx, "a@b.com"))

	items, err := uc.Items(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Empty(t, items)
}
