package service

import "tiffin/internal/domain"

// Reconcile merges an externally pushed order snapshot with the locally
// simulated one and reports whether the pushed snapshot was adopted.
//
// Policy: furthest-forward wins. A pushed status strictly ahead of the local
// one in the lifecycle chain is adopted wholesale; anything behind or equal is
// discarded, so the status a customer sees never regresses. The cost is that a
// wrongly-advanced local simulation can never be corrected backwards; external
// cancellation goes through the tracker's Cancel override instead.
func Reconcile(local, pushed domain.Order) (domain.Order, bool) {
	if pushed.Status.Ahead(local.Status) {
		return pushed, true
	}
	return local, false
}
