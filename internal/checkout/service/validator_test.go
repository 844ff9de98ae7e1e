package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiffin/internal/domain"
	"tiffin/internal/dto"
	apperrors "tiffin/internal/errors"
	"tiffin/internal/testutil"
)

func validCart() *domain.Cart {
	return &domain.Cart{
		Items: []domain.CartItem{
			{ItemID: "1", Name: "Thali", UnitPrice: 150, Quantity: 2, VendorID: "v1", VendorName: "Anna's"},
		},
	}
}

func validRequest() dto.CheckoutRequest {
	return dto.CheckoutRequest{
		DeliveryMode:  string(domain.ModeAgentDelivery),
		PaymentMethod: string(domain.PaymentUpi),
		AddressText:   "14 Hill Road, Bandra West, Mumbai",
	}
}

func validActor() *domain.Actor {
	return &domain.Actor{ID: "cust-1", Name: "Asha", Role: domain.RoleCustomer}
}

func resolvingGeocoder() *testutil.FakeGeocoder {
	return &testutil.FakeGeocoder{
		ResolveAddressFunc: func(ctx context.Context, text string) (*domain.Coordinates, error) {
			return &domain.Coordinates{Latitude: 19.05, Longitude: 72.83}, nil
		},
	}
}

func TestValidate_SuccessBuildsIntent(t *testing.T) {
	validator := NewValidator(resolvingGeocoder())

	intent, err := validator.Validate(context.Background(), validCart(), validRequest(), validActor())
	require.NoError(t, err)

	assert.Equal(t, "cust-1", intent.Actor.ID)
	assert.Equal(t, 300.0, intent.Subtotal)
	assert.Equal(t, domain.ModeAgentDelivery, intent.DeliveryMode)
	assert.Equal(t, domain.PaymentUpi, intent.PaymentMethod)
	assert.Equal(t, 19.05, intent.Address.Coordinates.Latitude)
	require.Len(t, intent.Items, 1)
}

func TestValidate_EmptyCart(t *testing.T) {
	validator := NewValidator(resolvingGeocoder())

	for _, cart := range []*domain.Cart{nil, {}} {
		_, err := validator.Validate(context.Background(), cart, validRequest(), validActor())
		ve, ok := apperrors.IsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeEmptyCart, ve.Code)
	}
}

func TestValidate_InvalidDeliveryMode(t *testing.T) {
	validator := NewValidator(resolvingGeocoder())

	req := validRequest()
	req.DeliveryMode = "TELEPORT"

	_, err := validator.Validate(context.Background(), validCart(), req, validActor())
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidDeliveryMode, ve.Code)
}

func TestValidate_DeliveryRequiresAddress(t *testing.T) {
	validator := NewValidator(resolvingGeocoder())

	req := validRequest()
	req.AddressText = "   "

	_, err := validator.Validate(context.Background(), validCart(), req, validActor())
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAddressRequired, ve.Code)
}

func TestValidate_TakeawaySkipsGeocoding(t *testing.T) {
	geocoder := &testutil.FakeGeocoder{
		ResolveAddressFunc: func(ctx context.Context, text string) (*domain.Coordinates, error) {
			t.Fatal("geocoder must not be called for takeaway")
			return nil, nil
		},
	}
	validator := NewValidator(geocoder)

	req := validRequest()
	req.DeliveryMode = string(domain.ModeTakeaway)
	req.AddressText = ""

	intent, err := validator.Validate(context.Background(), validCart(), req, validActor())
	require.NoError(t, err)
	assert.Empty(t, intent.Address.Text)
}

func TestValidate_UnresolvedAddress(t *testing.T) {
	geocoder := &testutil.FakeGeocoder{
		ResolveAddressFunc: func(ctx context.Context, text string) (*domain.Coordinates, error) {
			return nil, nil
		},
	}
	validator := NewValidator(geocoder)

	_, err := validator.Validate(context.Background(), validCart(), validRequest(), validActor())
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAddressUnresolved, ve.Code)
}

func TestValidate_GeocoderFailureIsCollaboratorError(t *testing.T) {
	cause := errors.New("upstream timeout")
	geocoder := &testutil.FakeGeocoder{
		ResolveAddressFunc: func(ctx context.Context, text string) (*domain.Coordinates, error) {
			return nil, cause
		},
	}
	validator := NewValidator(geocoder)

	_, err := validator.Validate(context.Background(), validCart(), validRequest(), validActor())
	ce, ok := apperrors.IsCollaboratorError(err)
	require.True(t, ok)
	assert.Equal(t, "geocoding", ce.Collaborator)
	assert.ErrorIs(t, err, cause)
}

func TestValidate_PaymentMethodRequired(t *testing.T) {
	validator := NewValidator(resolvingGeocoder())

	req := validRequest()
	req.PaymentMethod = ""

	_, err := validator.Validate(context.Background(), validCart(), req, validActor())
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodePaymentMethodRequired, ve.Code)
}

func TestValidate_AuthRequired(t *testing.T) {
	validator := NewValidator(resolvingGeocoder())

	for _, actor := range []*domain.Actor{nil, {ID: ""}} {
		_, err := validator.Validate(context.Background(), validCart(), validRequest(), actor)
		ve, ok := apperrors.IsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeAuthRequired, ve.Code)
	}
}

func TestValidate_ShortCircuitsBeforeGeocoding(t *testing.T) {
	called := false
	geocoder := &testutil.FakeGeocoder{
		ResolveAddressFunc: func(ctx context.Context, text string) (*domain.Coordinates, error) {
			called = true
			return nil, nil
		},
	}
	validator := NewValidator(geocoder)

	_, err := validator.Validate(context.Background(), &domain.Cart{}, validRequest(), validActor())
	require.Error(t, err)
	assert.False(t, called)
}
