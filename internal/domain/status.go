package domain

import "time"

type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusPickedUp  OrderStatus = "PICKED_UP"
	StatusInTransit OrderStatus = "IN_TRANSIT"
	StatusDelivered OrderStatus = "DELIVERED"

	// StatusCancelled is an external override, not part of the lifecycle
	// chain. It is terminal and halts the timer.
	StatusCancelled OrderStatus = "CANCELLED"
)

// statusChain is the canonical delivery sequence. No branching, no skipping.
var statusChain = []OrderStatus{
	StatusPlaced,
	StatusPreparing,
	StatusPickedUp,
	StatusInTransit,
	StatusDelivered,
}

// Rank returns the position of s in the lifecycle chain, or -1 when s is not
// a lifecycle status.
func (s OrderStatus) Rank() int {
	for i, st := range statusChain {
		if st == s {
			return i
		}
	}
	return -1
}

func (s OrderStatus) IsValid() bool {
	return s.Rank() >= 0 || s == StatusCancelled
}

// Next returns the successor status. Delivered has no successor.
func (s OrderStatus) Next() (OrderStatus, bool) {
	rank := s.Rank()
	if rank < 0 || rank >= len(statusChain)-1 {
		return "", false
	}
	return statusChain[rank+1], true
}

// Ahead reports whether s is strictly ahead of other in the chain.
// Non-lifecycle statuses are never ahead of anything.
func (s OrderStatus) Ahead(other OrderStatus) bool {
	sr, or := s.Rank(), other.Rank()
	if sr < 0 || or < 0 {
		return false
	}
	return sr > or
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type DeliveryMode string

const (
	ModeAgentDelivery DeliveryMode = "DELIVERY"
	ModeTakeaway      DeliveryMode = "TAKEAWAY"
	ModeDineIn        DeliveryMode = "DINE_IN"
)

func (m DeliveryMode) IsValid() bool {
	switch m {
	case ModeAgentDelivery, ModeTakeaway, ModeDineIn:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "CARD"
	PaymentUpi  PaymentMethod = "UPI"
	PaymentCash PaymentMethod = "CASH_ON_DELIVERY"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentUpi, PaymentCash:
		return true
	}
	return false
}

// StepDurations holds the nominal real-world time budgeted for each
// non-terminal status before automatic advancement. The acceleration factor
// for demo timing is applied by the tracker, not here.
type StepDurations struct {
	Placed    time.Duration
	Preparing time.Duration
	PickedUp  time.Duration
	InTransit time.Duration
}

// DefaultStepDurations are the reference durations.
var DefaultStepDurations = StepDurations{
	Placed:    2 * time.Minute,
	Preparing: 15 * time.Minute,
	PickedUp:  5 * time.Minute,
	InTransit: 20 * time.Minute,
}

// For returns the nominal duration of s, or 0 for terminal statuses.
func (d StepDurations) For(s OrderStatus) time.Duration {
	switch s {
	case StatusPlaced:
		return d.Placed
	case StatusPreparing:
		return d.Preparing
	case StatusPickedUp:
		return d.PickedUp
	case StatusInTransit:
		return d.InTransit
	}
	return 0
}

// Remaining sums the nominal durations from status from (inclusive) to
// Delivered.
func (d StepDurations) Remaining(from OrderStatus) time.Duration {
	rank := from.Rank()
	if rank < 0 {
		return 0
	}
	var total time.Duration
	for _, s := range statusChain[rank:] {
		total += d.For(s)
	}
	return total
}
