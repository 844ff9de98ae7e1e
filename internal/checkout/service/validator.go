package service

import (
	"context"
	"strings"

	"tiffin/internal/domain"
	"tiffin/internal/dto"
	apperrors "tiffin/internal/errors"
)

// Geocoder resolves free-form address text to coordinates. A nil result with
// a nil error means the address could not be resolved.
type Geocoder interface {
	ResolveAddress(ctx context.Context, text string) (*domain.Coordinates, error)
}

// Validator gates order creation. It runs the predicate pipeline synchronously
// at submit time, short-circuiting on the first failure, and on success
// returns the immutable CheckoutIntent the tracker consumes.
type Validator struct {
	geocoder Geocoder
}

func NewValidator(geocoder Geocoder) *Validator {
	return &Validator{geocoder: geocoder}
}

// Validate checks cart, the snapshot of which must already have been taken
// atomically by the caller, against the submitted form and actor.
func (v *Validator) Validate(ctx context.Context, cart *domain.Cart, req dto.CheckoutRequest, actor *domain.Actor) (*dto.CheckoutIntent, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, apperrors.NewValidationError(apperrors.CodeEmptyCart, "cart is empty")
	}

	mode := domain.DeliveryMode(req.DeliveryMode)
	if !mode.IsValid() {
		return nil, apperrors.NewValidationError(
			apperrors.CodeInvalidDeliveryMode,
			"invalid delivery mode",
			apperrors.ValidationDetail{Field: "deliveryMode", Message: "must be one of DELIVERY, TAKEAWAY, DINE_IN"},
		)
	}

	var address domain.Address
	if mode == domain.ModeAgentDelivery {
		text := strings.TrimSpace(req.AddressText)
		if text == "" {
			return nil, apperrors.NewValidationError(
				apperrors.CodeAddressRequired,
				"delivery address is required",
				apperrors.ValidationDetail{Field: "addressText", Message: "required for delivery orders"},
			)
		}

		coords, err := v.geocoder.ResolveAddress(ctx, text)
		if err != nil {
			return nil, apperrors.NewCollaboratorError("geocoding", "resolving address", err)
		}
		if coords == nil {
			return nil, apperrors.NewValidationError(
				apperrors.CodeAddressUnresolved,
				"delivery address could not be resolved",
				apperrors.ValidationDetail{Field: "addressText", Message: "no coordinates found for address"},
			)
		}

		address = domain.Address{Text: text, Coordinates: *coords}
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return nil, apperrors.NewValidationError(
			apperrors.CodePaymentMethodRequired,
			"payment method is required",
			apperrors.ValidationDetail{Field: "paymentMethod", Message: "must be one of CARD, UPI, CASH_ON_DELIVERY"},
		)
	}

	if actor == nil || actor.ID == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeAuthRequired, "authentication required")
	}

	return &dto.CheckoutIntent{
		Actor:         *actor,
		Items:         cart.Items,
		Subtotal:      cart.Subtotal(),
		DeliveryMode:  mode,
		PaymentMethod: method,
		Address:       address,
		Notes:         req.Notes,
	}, nil
}
