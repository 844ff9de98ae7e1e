package service

import (
	"context"
	"sync"
	"time"

	"tiffin/internal/domain"
	apperrors "tiffin/internal/errors"

	"go.uber.org/zap"
)

// PersistenceRepository is the durable per-session cart store.
type PersistenceRepository interface {
	Load(ctx context.Context, key string) (*domain.Cart, error)
	Save(ctx context.Context, key string, cart *domain.Cart) error
	Delete(ctx context.Context, key string) error
}

// CartStore holds the carts of active sessions, keyed by a stable cart key.
// All mutations are serialized by one mutex; every mutation persists the new
// snapshot asynchronously and never blocks on the write.
type CartStore struct {
	mu     sync.Mutex
	repo   PersistenceRepository
	logger *zap.Logger
	carts  map[string]*cartState
}

type cartState struct {
	cart      *domain.Cart
	subtotal  float64
	itemCount int
	memoValid bool
}

func NewCartStore(repo PersistenceRepository, logger *zap.Logger) *CartStore {
	return &CartStore{
		repo:   repo,
		logger: logger,
		carts:  make(map[string]*cartState),
	}
}

// AddItem validates item and merges it into the cart for key. Adding an item
// from a different vendor than the cart's current one replaces the whole cart
// with just that item: a vendor switch clears prior selections.
func (s *CartStore) AddItem(ctx context.Context, key string, item domain.CartItem) (*domain.Cart, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.stateLocked(ctx, key)
	if err != nil {
		return nil, err
	}

	cart := state.cart
	switch {
	case !cart.IsEmpty() && cart.VendorID() != item.VendorID:
		cart.Items = []domain.CartItem{item}
	default:
		if idx, ok := cart.Find(item.ItemID); ok {
			cart.Items[idx].Quantity += item.Quantity
		} else {
			cart.Items = append(cart.Items, item)
		}
	}

	state.memoValid = false
	s.persist(key, cart)
	return cart.Copy(), nil
}

// RemoveItem deletes the item if present; absent is a no-op, not an error.
func (s *CartStore) RemoveItem(ctx context.Context, key, itemID string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.stateLocked(ctx, key)
	if err != nil {
		return nil, err
	}

	cart := state.cart
	if idx, ok := cart.Find(itemID); ok {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
		state.memoValid = false
		s.persist(key, cart)
	}

	return cart.Copy(), nil
}

// UpdateQuantity sets an existing item's quantity. Quantities below 1 are
// rejected, never clamped to removal; dropping an item is the caller's call
// via Decrease or RemoveItem.
func (s *CartStore) UpdateQuantity(ctx context.Context, key, itemID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, apperrors.NewValidationError(
			apperrors.CodeInvalidQuantity,
			"quantity must be at least 1",
			apperrors.ValidationDetail{Field: "quantity", Message: "quantity must be at least 1"},
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.stateLocked(ctx, key)
	if err != nil {
		return nil, err
	}

	cart := state.cart
	idx, ok := cart.Find(itemID)
	if !ok {
		return nil, apperrors.NewNotFoundError("item not in cart")
	}

	cart.Items[idx].Quantity = quantity
	state.memoValid = false
	s.persist(key, cart)
	return cart.Copy(), nil
}

// Decrease lowers an item's quantity by one, removing the item when the
// result would drop below 1. Absent items are a no-op, as with RemoveItem.
func (s *CartStore) Decrease(ctx context.Context, key, itemID string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.stateLocked(ctx, key)
	if err != nil {
		return nil, err
	}

	cart := state.cart
	idx, ok := cart.Find(itemID)
	if !ok {
		return cart.Copy(), nil
	}

	if cart.Items[idx].Quantity <= 1 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity--
	}

	state.memoValid = false
	s.persist(key, cart)
	return cart.Copy(), nil
}

func (s *CartStore) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.stateLocked(ctx, key)
	if err != nil {
		return err
	}

	state.cart.Items = nil
	state.memoValid = false
	s.persist(key, state.cart)
	return nil
}

func (s *CartStore) Get(ctx context.Context, key string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.stateLocked(ctx, key)
	if err != nil {
		return nil, err
	}
	return state.cart.Copy(), nil
}

// Totals returns the memoized subtotal and item count.
func (s *CartStore) Totals(ctx context.Context, key string) (float64, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.stateLocked(ctx, key)
	if err != nil {
		return 0, 0, err
	}

	if !state.memoValid {
		state.subtotal = state.cart.Subtotal()
		state.itemCount = state.cart.ItemCount()
		state.memoValid = true
	}
	return state.subtotal, state.itemCount, nil
}

// Snapshot returns a deep copy taken under the store lock, so checkout sees
// an item list and totals that agree even if the cart mutates mid-submit.
func (s *CartStore) Snapshot(ctx context.Context, key string) (*domain.Cart, error) {
	return s.Get(ctx, key)
}

// stateLocked returns the in-memory state for key, loading the persisted cart
// on first access. Callers hold s.mu.
func (s *CartStore) stateLocked(ctx context.Context, key string) (*cartState, error) {
	if state, ok := s.carts[key]; ok {
		return state, nil
	}

	cart, err := s.repo.Load(ctx, key)
	if err != nil {
		s.logger.Warn("loading persisted cart", zap.String("cartKey", key), zap.Error(err))
		cart = nil
	}
	if cart == nil {
		cart = &domain.Cart{}
	}

	state := &cartState{cart: cart}
	s.carts[key] = state
	return state, nil
}

// persist writes the snapshot asynchronously. A failed write is logged, never
// surfaced: the in-memory cart stays authoritative for the session.
func (s *CartStore) persist(key string, cart *domain.Cart) {
	snapshot := cart.Copy()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.repo.Save(ctx, key, snapshot); err != nil {
			s.logger.Warn("persisting cart", zap.String("cartKey", key), zap.Error(err))
		}
	}()
}

func validateItem(item domain.CartItem) error {
	var details []apperrors.ValidationDetail

	if item.ItemID == "" {
		details = append(details, apperrors.ValidationDetail{Field: "itemId", Message: "required field"})
	}
	if item.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "required field"})
	}
	if item.VendorID == "" {
		details = append(details, apperrors.ValidationDetail{Field: "vendorId", Message: "required field"})
	}
	if item.UnitPrice < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "unitPrice", Message: "must not be negative"})
	}
	if item.Quantity < 1 {
		details = append(details, apperrors.ValidationDetail{Field: "quantity", Message: "quantity must be at least 1"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError(apperrors.CodeInvalidItem, "invalid item", details...)
	}
	return nil
}
