package testutil

import (
	"context"
	"sync"

	"tiffin/internal/domain"
)

// FakeGeocoder is a function-field test double for the geocoding collaborator.
type FakeGeocoder struct {
	ResolveAddressFunc func(ctx context.Context, text string) (*domain.Coordinates, error)
}

func (f *FakeGeocoder) ResolveAddress(ctx context.Context, text string) (*domain.Coordinates, error) {
	return f.ResolveAddressFunc(ctx, text)
}

// FakePaymentGateway is a function-field test double for the payment gateway.
type FakePaymentGateway struct {
	ChargeFunc func(ctx context.Context, amount float64, method domain.PaymentMethod) (string, error)
}

func (f *FakePaymentGateway) Charge(ctx context.Context, amount float64, method domain.PaymentMethod) (string, error) {
	return f.ChargeFunc(ctx, amount, method)
}

// MemoryCartRepository is an in-memory stand-in for the persisted cart store.
// It records every save so tests can assert on fire-and-forget persistence.
type MemoryCartRepository struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
	saves int
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string]*domain.Cart)}
}

func (r *MemoryCartRepository) Load(ctx context.Context, key string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[key]
	if !ok {
		return nil, nil
	}
	return cart.Copy(), nil
}

func (r *MemoryCartRepository) Save(ctx context.Context, key string, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[key] = cart.Copy()
	r.saves++
	return nil
}

func (r *MemoryCartRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, key)
	return nil
}

func (r *MemoryCartRepository) SaveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func (r *MemoryCartRepository) Stored(key string) *domain.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[key]
	if !ok {
		return nil
	}
	return cart.Copy()
}
