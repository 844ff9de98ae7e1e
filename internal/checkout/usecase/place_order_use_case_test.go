package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tiffin/internal/config"
	"tiffin/internal/domain"
	"tiffin/internal/dto"
	apperrors "tiffin/internal/errors"
	"tiffin/internal/testutil"
)

type fakeCartSource struct {
	SnapshotFunc func(ctx context.Context, key string) (*domain.Cart, error)
	ClearFunc    func(ctx context.Context, key string) error
	cleared      int
}

func (f *fakeCartSource) Snapshot(ctx context.Context, key string) (*domain.Cart, error) {
	return f.SnapshotFunc(ctx, key)
}

func (f *fakeCartSource) Clear(ctx context.Context, key string) error {
	f.cleared++
	if f.ClearFunc != nil {
		return f.ClearFunc(ctx, key)
	}
	return nil
}

type fakeValidator struct {
	ValidateFunc func(ctx context.Context, cart *domain.Cart, req dto.CheckoutRequest, actor *domain.Actor) (*dto.CheckoutIntent, error)
}

func (f *fakeValidator) Validate(ctx context.Context, cart *domain.Cart, req dto.CheckoutRequest, actor *domain.Actor) (*dto.CheckoutIntent, error) {
	return f.ValidateFunc(ctx, cart, req, actor)
}

type fakeTracker struct {
	CreateFunc func(ctx context.Context, intent dto.CheckoutIntent, paymentID string) (*domain.Order, error)
	created    int
}

func (f *fakeTracker) Create(ctx context.Context, intent dto.CheckoutIntent, paymentID string) (*domain.Order, error) {
	f.created++
	return f.CreateFunc(ctx, intent, paymentID)
}

func testPricing() config.PricingConfig {
	return config.PricingConfig{DeliveryFee: 40, TaxRate: 0.05}
}

func checkoutCart() *domain.Cart {
	return &domain.Cart{
		Items: []domain.CartItem{
			{ItemID: "1", Name: "Thali", UnitPrice: 150, Quantity: 2, VendorID: "v1", VendorName: "Anna's"},
		},
	}
}

func checkoutIntent(actor domain.Actor, cart *domain.Cart) *dto.CheckoutIntent {
	return &dto.CheckoutIntent{
		Actor:         actor,
		Items:         cart.Items,
		Subtotal:      cart.Subtotal(),
		DeliveryMode:  domain.ModeAgentDelivery,
		PaymentMethod: domain.PaymentUpi,
		Address:       domain.Address{Text: "14 Hill Road", Coordinates: domain.Coordinates{Latitude: 19.05, Longitude: 72.83}},
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	actor := domain.Actor{ID: "cust-1", Name: "Asha", Role: domain.RoleCustomer}
	cart := checkoutCart()

	carts := &fakeCartSource{
		SnapshotFunc: func(ctx context.Context, key string) (*domain.Cart, error) {
			assert.Equal(t, actor.ID, key)
			return cart, nil
		},
	}
	validator := &fakeValidator{
		ValidateFunc: func(ctx context.Context, c *domain.Cart, req dto.CheckoutRequest, a *domain.Actor) (*dto.CheckoutIntent, error) {
			return checkoutIntent(*a, c), nil
		},
	}
	var chargedAmount float64
	payments := &testutil.FakePaymentGateway{
		ChargeFunc: func(ctx context.Context, amount float64, method domain.PaymentMethod) (string, error) {
			chargedAmount = amount
			return "pay_123", nil
		},
	}
	tracker := &fakeTracker{
		CreateFunc: func(ctx context.Context, intent dto.CheckoutIntent, paymentID string) (*domain.Order, error) {
			assert.Equal(t, "pay_123", paymentID)
			return &domain.Order{ID: "ord-1", Total: 355, Status: domain.StatusPlaced}, nil
		},
	}

	uc := NewPlaceOrderUseCase(carts, validator, payments, tracker, testPricing(), zap.NewNop())

	order, err := uc.PlaceOrder(context.Background(), &actor, dto.CheckoutRequest{DeliveryMode: "DELIVERY"})
	require.NoError(t, err)

	assert.Equal(t, "ord-1", order.ID)
	// subtotal 300 + delivery fee 40 + 5% tax 15: the charge matches the
	// total the tracker records.
	assert.InDelta(t, 355.0, chargedAmount, 1e-9)
	assert.InDelta(t, order.Total, chargedAmount, 1e-9)
	assert.Equal(t, 1, tracker.created)
	assert.Equal(t, 1, carts.cleared)
}

func TestPlaceOrder_TakeawayChargeHasNoDeliveryFee(t *testing.T) {
	actor := domain.Actor{ID: "cust-1", Role: domain.RoleCustomer}
	cart := checkoutCart()

	carts := &fakeCartSource{
		SnapshotFunc: func(ctx context.Context, key string) (*domain.Cart, error) {
			return cart, nil
		},
	}
	validator := &fakeValidator{
		ValidateFunc: func(ctx context.Context, c *domain.Cart, req dto.CheckoutRequest, a *domain.Actor) (*dto.CheckoutIntent, error) {
			intent := checkoutIntent(*a, c)
			intent.DeliveryMode = domain.ModeTakeaway
			intent.Address = domain.Address{}
			return intent, nil
		},
	}
	var chargedAmount float64
	payments := &testutil.FakePaymentGateway{
		ChargeFunc: func(ctx context.Context, amount float64, method domain.PaymentMethod) (string, error) {
			chargedAmount = amount
			return "pay_789", nil
		},
	}
	tracker := &fakeTracker{
		CreateFunc: func(ctx context.Context, intent dto.CheckoutIntent, paymentID string) (*domain.Order, error) {
			return &domain.Order{ID: "ord-3", Total: 315, Status: domain.StatusPlaced}, nil
		},
	}
	uc := NewPlaceOrderUseCase(carts, validator, payments, tracker, testPricing(), zap.NewNop())

	order, err := uc.PlaceOrder(context.Background(), &actor, dto.CheckoutRequest{DeliveryMode: "TAKEAWAY"})
	require.NoError(t, err)
	assert.InDelta(t, 315.0, chargedAmount, 1e-9)
	assert.InDelta(t, order.Total, chargedAmount, 1e-9)
}

func TestPlaceOrder_RequiresActor(t *testing.T) {
	uc := NewPlaceOrderUseCase(&fakeCartSource{}, &fakeValidator{}, &testutil.FakePaymentGateway{}, &fakeTracker{}, testPricing(), zap.NewNop())

	for _, actor := range []*domain.Actor{nil, {ID: ""}} {
		_, err := uc.PlaceOrder(context.Background(), actor, dto.CheckoutRequest{})
		ve, ok := apperrors.IsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeAuthRequired, ve.Code)
	}
}

func TestPlaceOrder_ValidationFailureSkipsPaymentAndCart(t *testing.T) {
	actor := domain.Actor{ID: "cust-1", Role: domain.RoleCustomer}
	carts := &fakeCartSource{
		SnapshotFunc: func(ctx context.Context, key string) (*domain.Cart, error) {
			return &domain.Cart{}, nil
		},
	}
	validator := &fakeValidator{
		ValidateFunc: func(ctx context.Context, c *domain.Cart, req dto.CheckoutRequest, a *domain.Actor) (*dto.CheckoutIntent, error) {
			return nil, apperrors.NewValidationError(apperrors.CodeEmptyCart, "cart is empty")
		},
	}
	payments := &testutil.FakePaymentGateway{
		ChargeFunc: func(ctx context.Context, amount float64, method domain.PaymentMethod) (string, error) {
			t.Fatal("payment must not run when validation fails")
			return "", nil
		},
	}
	uc := NewPlaceOrderUseCase(carts, validator, payments, &fakeTracker{}, testPricing(), zap.NewNop())

	_, err := uc.PlaceOrder(context.Background(), &actor, dto.CheckoutRequest{})
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeEmptyCart, ve.Code)
	assert.Equal(t, 0, carts.cleared)
}

func TestPlaceOrder_PaymentDeclinedLeavesCartUntouched(t *testing.T) {
	actor := domain.Actor{ID: "cust-1", Role: domain.RoleCustomer}
	cart := checkoutCart()

	carts := &fakeCartSource{
		SnapshotFunc: func(ctx context.Context, key string) (*domain.Cart, error) {
			return cart, nil
		},
	}
	validator := &fakeValidator{
		ValidateFunc: func(ctx context.Context, c *domain.Cart, req dto.CheckoutRequest, a *domain.Actor) (*dto.CheckoutIntent, error) {
			return checkoutIntent(*a, c), nil
		},
	}
	declined := errors.New("card declined")
	payments := &testutil.FakePaymentGateway{
		ChargeFunc: func(ctx context.Context, amount float64, method domain.PaymentMethod) (string, error) {
			return "", declined
		},
	}
	tracker := &fakeTracker{
		CreateFunc: func(ctx context.Context, intent dto.CheckoutIntent, paymentID string) (*domain.Order, error) {
			t.Fatal("order must not be created when payment fails")
			return nil, nil
		},
	}
	uc := NewPlaceOrderUseCase(carts, validator, payments, tracker, testPricing(), zap.NewNop())

	_, err := uc.PlaceOrder(context.Background(), &actor, dto.CheckoutRequest{DeliveryMode: "DELIVERY"})
	ce, ok := apperrors.IsCollaboratorError(err)
	require.True(t, ok)
	assert.Equal(t, "payment", ce.Collaborator)
	assert.ErrorIs(t, err, declined)
	assert.Equal(t, 0, carts.cleared)
}

func TestPlaceOrder_ClearFailureStillReturnsOrder(t *testing.T) {
	actor := domain.Actor{ID: "cust-1", Role: domain.RoleCustomer}
	cart := checkoutCart()

	carts := &fakeCartSource{
		SnapshotFunc: func(ctx context.Context, key string) (*domain.Cart, error) {
			return cart, nil
		},
		ClearFunc: func(ctx context.Context, key string) error {
			return errors.New("redis down")
		},
	}
	validator := &fakeValidator{
		ValidateFunc: func(ctx context.Context, c *domain.Cart, req dto.CheckoutRequest, a *domain.Actor) (*dto.CheckoutIntent, error) {
			return checkoutIntent(*a, c), nil
		},
	}
	payments := &testutil.FakePaymentGateway{
		ChargeFunc: func(ctx context.Context, amount float64, method domain.PaymentMethod) (string, error) {
			return "pay_456", nil
		},
	}
	tracker := &fakeTracker{
		CreateFunc: func(ctx context.Context, intent dto.CheckoutIntent, paymentID string) (*domain.Order, error) {
			return &domain.Order{ID: "ord-2", Status: domain.StatusPlaced}, nil
		},
	}
	uc := NewPlaceOrderUseCase(carts, validator, payments, tracker, testPricing(), zap.NewNop())

	order, err := uc.PlaceOrder(context.Background(), &actor, dto.CheckoutRequest{DeliveryMode: "DELIVERY"})
	require.NoError(t, err)
	assert.Equal(t, "ord-2", order.ID)
}
