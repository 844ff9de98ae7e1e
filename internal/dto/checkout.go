package dto

import "tiffin/internal/domain"

type CheckoutRequest struct {
	DeliveryMode  string `json:"deliveryMode"`
	PaymentMethod string `json:"paymentMethod"`
	AddressText   string `json:"addressText"`
	Notes         string `json:"notes"`
}

// CheckoutIntent is the immutable snapshot handed to the order tracker. It is
// taken atomically against the cart so a concurrent cart mutation during
// submission cannot produce an order whose totals disagree with its item list.
type CheckoutIntent struct {
	Actor         domain.Actor
	Items         []domain.CartItem
	Subtotal      float64
	DeliveryMode  domain.DeliveryMode
	PaymentMethod domain.PaymentMethod
	Address       domain.Address
	Notes         string
}
