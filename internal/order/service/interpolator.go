package service

import (
	"time"

	"tiffin/internal/domain"
)

// AgentPosition derives the delivery agent's displayed coordinate from the
// order's current status and the elapsed time in it. The movement leg spans
// PickedUp and InTransit; progress over the combined leg is linear between the
// vendor and the delivery address. The true road path is a map-display concern
// supplied by an external routing collaborator, not position truth.
//
// Before PickedUp the agent sits at the vendor; at or after Delivered, at the
// delivery address. Durations are the already-accelerated step durations.
func AgentPosition(o domain.Order, enteredAt, now time.Time, pickedUpDur, inTransitDur time.Duration) domain.Coordinates {
	vendor := o.Vendor.Coordinates
	dest := o.DeliveryAddress.Coordinates

	switch o.Status {
	case domain.StatusDelivered:
		return dest
	case domain.StatusPickedUp, domain.StatusInTransit:
		// fall through to interpolation
	default:
		return vendor
	}

	leg := pickedUpDur + inTransitDur
	if leg <= 0 {
		return dest
	}

	elapsed := now.Sub(enteredAt)
	if o.Status == domain.StatusInTransit {
		elapsed += pickedUpDur
	}

	f := float64(elapsed) / float64(leg)
	f = clamp(f, 0, 1)

	return domain.Coordinates{
		Latitude:  vendor.Latitude + f*(dest.Latitude-vendor.Latitude),
		Longitude: vendor.Longitude + f*(dest.Longitude-vendor.Longitude),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
