package domain

import "time"

// Vendor is the restaurant an order is placed against.
type Vendor struct {
	ID          string
	Name        string
	Cuisine     string
	Coordinates Coordinates
}

// Agent is the delivery courier assigned to an order's movement leg.
type Agent struct {
	ID          string
	Name        string
	Coordinates Coordinates
}

// Address is a delivery destination with its geocoded coordinates.
type Address struct {
	Text        string
	Coordinates Coordinates
}

// Order is owned exclusively by the lifecycle tracker once created. Items are
// immutable snapshots; mutating the live cart after placement must not affect
// a placed order.
type Order struct {
	ID                string
	Status            OrderStatus
	PlacedAt          time.Time
	EstimatedDelivery time.Time
	Vendor            Vendor
	Agent             Agent
	DeliveryAddress   Address
	Items             []CartItem
	Subtotal          float64
	DeliveryFee       float64
	Taxes             float64
	Total             float64
	PaymentMethod     PaymentMethod
	PaymentID         string
	DeliveryMode      DeliveryMode
	Notes             string
}

// Copy returns a deep copy, used for observer snapshots.
func (o Order) Copy() Order {
	items := make([]CartItem, len(o.Items))
	copy(items, o.Items)
	for i := range items {
		if items[i].VendorCoordinates != nil {
			coords := *items[i].VendorCoordinates
			items[i].VendorCoordinates = &coords
		}
	}
	o.Items = items
	return o
}

// ConsistentTotals reports whether the money invariant holds: subtotal is the
// sum of line totals and total = subtotal + deliveryFee + taxes.
func (o Order) ConsistentTotals() bool {
	lines := 0.0
	for _, item := range o.Items {
		lines += item.LineTotal()
	}
	return almostEqual(o.Subtotal, lines) &&
		almostEqual(o.Total, o.Subtotal+o.DeliveryFee+o.Taxes)
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-6
}
