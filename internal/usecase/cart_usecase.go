package usecase

import (
	"context"
	"sync"
	"time"

	"smartethnic/internal/domain/entity"
	"smartethnic/internal/domain/repository"
	"smartethnic/pkg/debounce"
	"smartethnic/pkg/logger"
)

// DefaultSaveDelay is the quiet window before a cart mutation is persisted.
const DefaultSaveDelay = 500 * time.Millisecond

// CartUseCase holds the per-user in-memory cart aggregates and keeps them
// synchronized with the remote cart documents.
//
// Sync contract: the remote document is loaded exactly once per login
// (Attach); mutations while loaded schedule a debounced full-document
// overwrite, so rapid edits coalesce into one write reflecting the final
// state; an empty list deletes the document instead of writing an empty
// array; no write ever runs before the initial load, so an empty in-memory
// cart cannot clobber a not-yet-fetched remote one. Concurrent sessions for
// the same user race with last-write-wins.
type CartUseCase struct {
	cartRepo repository.CartRepository
	delay    time.Duration

	mu    sync.Mutex
	carts map[string]*cartState
}

type cartState struct {
	items  []entity.CartItem
	loaded bool
	saver  *debounce.Debouncer
}

func NewCartUseCase(cartRepo repository.CartRepository, delay time.Duration) *CartUseCase {
	return &CartUseCase{
		cartRepo: cartRepo,
		delay:    delay,
		carts:    make(map[string]*cartState),
	}
}

// Attach makes email's cart the active aggregate, loading the remote
// document on first call. Subsequent calls for the same login are no-ops.
func (uc *CartUseCase) Attach(ctx context.Context, email string) error {
	uc.mu.Lock()
	if state, ok := uc.carts[email]; ok && state.loaded {
		uc.mu.Unlock()
		return nil
	}
	uc.mu.Unlock()

	// Absent document means empty cart, not an error.
	cart, err := uc.cartRepo.Get(ctx, email)
	if err != nil {
		logger.Warn("Cart load failed for %s, starting empty: %v", email, err)
		cart = nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	state := &cartState{
		loaded: true,
		saver:  debounce.New(uc.delay),
	}
	if cart != nil {
		state.items = cart.Items
	}
	uc.carts[email] = state
	return nil
}

// Detach drops the in-memory aggregate on logout. Any pending write is
// cancelled; the remote document keeps its last saved state.
func (uc *CartUseCase) Detach(email string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if state, ok := uc.carts[email]; ok {
		state.saver.Stop()
		delete(uc.carts, email)
	}
}

// AddItem merges on (productID, size): an existing line item gains quantity
// 1, otherwise a new line item with quantity 1 is appended.
func (uc *CartUseCase) AddItem(ctx context.Context, email string, item entity.CartItem) error {
	if err := uc.Attach(ctx, email); err != nil {
		return err
	}
	if item.Size == "" {
		item.Size = entity.DefaultSize
	}

	uc.mu.Lock()
	// A concurrent Detach can drop the state between Attach and here; the
	// logout wins and the mutation becomes a no-op.
	state, ok := uc.carts[email]
	if !ok {
		uc.mu.Unlock()
		return nil
	}
	merged := false
	for i := range state.items {
		if state.items[i].ProductID == item.ProductID && state.items[i].Size == item.Size {
			state.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = 1
		state.items = append(state.items, item)
	}
	uc.mu.Unlock()

	uc.scheduleSave(email)
	return nil
}

// RemoveItem deletes the matching line item; no-op when absent.
func (uc *CartUseCase) RemoveItem(ctx context.Context, email, productID, size string) error {
	if err := uc.Attach(ctx, email); err != nil {
		return err
	}

	uc.mu.Lock()
	state, ok := uc.carts[email]
	if !ok {
		uc.mu.Unlock()
		return nil
	}
	removed := false
	kept := state.items[:0]
	for _, it := range state.items {
		if it.ProductID == productID && it.Size == size {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	state.items = kept
	uc.mu.Unlock()

	if removed {
		uc.scheduleSave(email)
	}
	return nil
}

// SetQuantity replaces the line item's quantity; a quantity of zero or below
// removes the item. Unknown (productID, size) pairs are a no-op.
func (uc *CartUseCase) SetQuantity(ctx context.Context, email, productID, size string, quantity int) error {
	if quantity <= 0 {
		return uc.RemoveItem(ctx, email, productID, size)
	}

	if err := uc.Attach(ctx, email); err != nil {
		return err
	}

	uc.mu.Lock()
	state, ok := uc.carts[email]
	if !ok {
		uc.mu.Unlock()
		return nil
	}
	changed := false
	for i := range state.items {
		if state.items[i].ProductID == productID && state.items[i].Size == size {
			state.items[i].Quantity = quantity
			changed = true
			break
		}
	}
	uc.mu.Unlock()

	if changed {
		uc.scheduleSave(email)
	}
	return nil
}

// Clear empties the aggregate and deletes the remote document immediately,
// bypassing the debounce window.
func (uc *CartUseCase) Clear(ctx context.Context, email string) error {
	uc.mu.Lock()
	state, ok := uc.carts[email]
	if !ok {
		state = &cartState{loaded: true, saver: debounce.New(uc.delay)}
		uc.carts[email] = state
	}
	state.saver.Stop()
	state.items = nil
	uc.mu.Unlock()

	return uc.cartRepo.Delete(ctx, email)
}

// Items returns a snapshot of the aggregate, loading it first if needed.
func (uc *CartUseCase) Items(ctx context.Context, email string) ([]entity.CartItem, error) {
	if err := uc.Attach(ctx, email); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	state, ok := uc.carts[email]
	if !ok {
		return nil, nil
	}
	items := make([]entity.CartItem, len(state.items))
	copy(items, state.items)
	return items, nil
}

// TotalItems is the sum of all quantities.
func (uc *CartUseCase) TotalItems(ctx context.Context, email string) (int, error) {
	items, err := uc.Items(ctx, email)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total, nil
}

// TotalPrice is the sum of price multiplied by quantity over all line items.
func (uc *CartUseCase) TotalPrice(ctx context.Context, email string) (int64, error) {
	items, err := uc.Items(ctx, email)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
	}
	return total, nil
}

// Flush forces any pending write for email to run now.
func (uc *CartUseCase) Flush(email string) {
	uc.mu.Lock()
	state, ok := uc.carts[email]
	uc.mu.Unlock()

	if ok {
		state.saver.Flush()
	}
}

// FlushAll drains every pending write; used on shutdown.
func (uc *CartUseCase) FlushAll() {
	uc.mu.Lock()
	savers := make([]*debounce.Debouncer, 0, len(uc.carts))
	for _, state := range uc.carts {
		savers = append(savers, state.saver)
	}
	uc.mu.Unlock()

	for _, s := range savers {
		s.Flush()
	}
}

func (uc *CartUseCase) scheduleSave(email string) {
	uc.mu.Lock()
	state, ok := uc.carts[email]
	uc.mu.Unlock()
	if !ok || !state.loaded {
		return
	}

	state.saver.Trigger(func() {
		uc.persist(email)
	})
}

// persist writes the state as of firing time, not of scheduling time, so the
// coalesced write reflects only the final state of a burst of edits.
func (uc *CartUseCase) persist(email string) {
	uc.mu.Lock()
	state, ok := uc.carts[email]
	if !ok || !state.loaded {
		uc.mu.Unlock()
		return
	}
	items := make([]entity.CartItem, len(state.items))
	copy(items, state.items)
	uc.mu.Unlock()

	// Detached from any request lifetime: the debounce timer outlives the
	// request that scheduled it.
	ctx := context.Background()

	var err error
	if len(items) == 0 {
		err = uc.cartRepo.Delete(ctx, email)
	} else {
		err = uc.cartRepo.Save(ctx, email, &entity.Cart{
			Items:     items,
			UpdatedAt: time.Now(),
		})
	}
	if err != nil {
		logger.Error("Cart save failed for %s: %v", email, err)
	}
}
