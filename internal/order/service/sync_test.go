package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tiffin/internal/domain"
)

func TestReconcile_PushedBehindIsDiscarded(t *testing.T) {
	local := domain.Order{ID: "o1", Status: domain.StatusInTransit, Notes: "local"}
	pushed := domain.Order{ID: "o1", Status: domain.StatusPreparing, Notes: "pushed"}

	merged, adopted := Reconcile(local, pushed)

	assert.False(t, adopted)
	assert.Equal(t, domain.StatusInTransit, merged.Status)
	assert.Equal(t, "local", merged.Notes)
}

func TestReconcile_EqualStatusIsDiscarded(t *testing.T) {
	local := domain.Order{ID: "o1", Status: domain.StatusPreparing, Notes: "local"}
	pushed := domain.Order{ID: "o1", Status: domain.StatusPreparing, Notes: "pushed"}

	merged, adopted := Reconcile(local, pushed)

	assert.False(t, adopted)
	assert.Equal(t, "local", merged.Notes)
}

func TestReconcile_PushedAheadIsAdoptedWholesale(t *testing.T) {
	local := domain.Order{ID: "o1", Status: domain.StatusPreparing, Notes: "local"}
	pushed := domain.Order{ID: "o1", Status: domain.StatusPickedUp, Notes: "pushed"}

	merged, adopted := Reconcile(local, pushed)

	assert.True(t, adopted)
	assert.Equal(t, domain.StatusPickedUp, merged.Status)
	assert.Equal(t, "pushed", merged.Notes)
}

func TestReconcile_NonLifecycleStatusNeverAdopted(t *testing.T) {
	local := domain.Order{ID: "o1", Status: domain.StatusPlaced}
	pushed := domain.Order{ID: "o1", Status: domain.StatusCancelled}

	_, adopted := Reconcile(local, pushed)
	assert.False(t, adopted)

	pushed.Status = "UNKNOWN"
	_, adopted = Reconcile(local, pushed)
	assert.False(t, adopted)
}

func TestReconcile_StatusNeverRegresses(t *testing.T) {
	statuses := []domain.OrderStatus{
		domain.StatusPlaced,
		domain.StatusPreparing,
		domain.StatusPickedUp,
		domain.StatusInTransit,
		domain.StatusDelivered,
	}

	for i, localStatus := range statuses {
		for j, pushedStatus := range statuses {
			merged, adopted := Reconcile(
				domain.Order{Status: localStatus},
				domain.Order{Status: pushedStatus},
			)
			assert.Equal(t, j > i, adopted)
			assert.GreaterOrEqual(t, merged.Status.Rank(), localStatus.Rank())
		}
	}
}
