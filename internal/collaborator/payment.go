package collaborator

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tiffin/internal/domain"
)

// SimPaymentGateway stands in for the external payment gateway. Every charge
// on a positive amount succeeds with a fresh payment id; the hook point for a
// real gateway is the PaymentGateway interface it implements.
type SimPaymentGateway struct{}

func NewSimPaymentGateway() *SimPaymentGateway {
	return &SimPaymentGateway{}
}

func (g *SimPaymentGateway) Charge(ctx context.Context, amount float64, method domain.PaymentMethod) (string, error) {
	// Zero is a valid charge: a cart of free promotional items still needs a
	// payment record to place the order.
	if amount < 0 {
		return "", errors.New("amount must not be negative")
	}
	if !method.IsValid() {
		return "", errors.New("unknown payment method")
	}
	return "pay_" + uuid.New().String(), nil
}
