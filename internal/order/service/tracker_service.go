package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tiffin/internal/config"
	"tiffin/internal/domain"
	"tiffin/internal/dto"
	apperrors "tiffin/internal/errors"
)

// agentRoster stands in for the external dispatch system assigning couriers.
var agentRoster = []string{"Ramesh", "Suresh", "Ganesh", "Mahesh"}

// TransitionFunc is invoked after every status transition, e.g. for metrics.
type TransitionFunc func(from, to domain.OrderStatus)

// Tracker owns every order after checkout commits it. It drives the lifecycle
// chain with single-shot timers and reconciles pushed snapshots; all
// mutations of an order are serialized by one mutex, and every scheduled
// callback re-validates its precondition (the generation guard) before acting,
// so a stale timer firing after an external update is a guaranteed no-op.
type Tracker struct {
	mu           sync.Mutex
	steps        domain.StepDurations
	accel        float64
	deliveryFee  float64
	taxRate      float64
	logger       *zap.Logger
	onTransition TransitionFunc
	orders       map[string]*trackedOrder
	created      int
}

type trackedOrder struct {
	order      domain.Order
	generation uint64
	enteredAt  time.Time
	timer      *time.Timer
	observers  map[int]func(domain.Order)
	nextObs    int
	closed     bool
}

func NewTracker(lifecycle config.LifecycleConfig, pricing config.PricingConfig, logger *zap.Logger, onTransition TransitionFunc) *Tracker {
	accel := lifecycle.Acceleration
	if accel <= 0 {
		accel = 1.0
	}
	if onTransition == nil {
		onTransition = func(from, to domain.OrderStatus) {}
	}

	return &Tracker{
		steps: domain.StepDurations{
			Placed:    lifecycle.PlacedDuration,
			Preparing: lifecycle.PreparingDuration,
			PickedUp:  lifecycle.PickedUpDuration,
			InTransit: lifecycle.InTransitDuration,
		},
		accel:        accel,
		deliveryFee:  pricing.DeliveryFee,
		taxRate:      pricing.TaxRate,
		logger:       logger,
		onTransition: onTransition,
		orders:       make(map[string]*trackedOrder),
	}
}

// StepDuration returns the simulated duration of status: the nominal duration
// divided by the acceleration factor. Zero for terminal statuses.
func (tr *Tracker) StepDuration(status domain.OrderStatus) time.Duration {
	nominal := tr.steps.For(status)
	if nominal <= 0 {
		return 0
	}
	return time.Duration(float64(nominal) / tr.accel)
}

// Create commits a checkout intent into a Placed order and starts its timer
// chain. paymentID must already exist; nothing partial is ever observable on
// failure.
func (tr *Tracker) Create(ctx context.Context, intent dto.CheckoutIntent, paymentID string) (*domain.Order, error) {
	if len(intent.Items) == 0 {
		return nil, apperrors.NewOrderCreationError("intent has no items")
	}
	if intent.Actor.ID == "" {
		return nil, apperrors.NewOrderCreationError("intent has no actor")
	}
	if paymentID == "" {
		return nil, apperrors.NewOrderCreationError("intent has no payment id")
	}
	first := intent.Items[0]
	if first.VendorID == "" {
		return nil, apperrors.NewOrderCreationError("intent has no vendor")
	}
	if !intent.DeliveryMode.IsValid() || !intent.PaymentMethod.IsValid() {
		return nil, apperrors.NewOrderCreationError("intent has invalid mode or payment method")
	}

	items := make([]domain.CartItem, len(intent.Items))
	copy(items, intent.Items)

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.LineTotal()
	}

	deliveryFee := 0.0
	if intent.DeliveryMode == domain.ModeAgentDelivery {
		deliveryFee = tr.deliveryFee
	}
	taxes := subtotal * tr.taxRate

	vendor := domain.Vendor{
		ID:   first.VendorID,
		Name: first.VendorName,
	}
	if first.VendorCoordinates != nil {
		vendor.Coordinates = *first.VendorCoordinates
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()

	now := time.Now()
	order := domain.Order{
		ID:       uuid.New().String(),
		Status:   domain.StatusPlaced,
		PlacedAt: now,
		// A static promise to the customer, computed once and never revised.
		EstimatedDelivery: now.Add(tr.remainingDuration(domain.StatusPlaced)),
		Vendor:            vendor,
		Agent: domain.Agent{
			ID:          uuid.New().String(),
			Name:        agentRoster[tr.created%len(agentRoster)],
			Coordinates: vendor.Coordinates,
		},
		DeliveryAddress: intent.Address,
		Items:           items,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		Taxes:           taxes,
		Total:           subtotal + deliveryFee + taxes,
		PaymentMethod:   intent.PaymentMethod,
		PaymentID:       paymentID,
		DeliveryMode:    intent.DeliveryMode,
		Notes:           intent.Notes,
	}
	tr.created++

	t := &trackedOrder{
		order:     order,
		enteredAt: now,
		observers: make(map[int]func(domain.Order)),
	}
	tr.orders[order.ID] = t
	tr.scheduleLocked(t)

	tr.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("vendorId", order.Vendor.ID),
		zap.Float64("total", order.Total),
		zap.Time("estimatedDelivery", order.EstimatedDelivery),
	)

	snapshot := order.Copy()
	return &snapshot, nil
}

// Get returns a snapshot of the order.
func (tr *Tracker) Get(id string) (*domain.Order, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	t, ok := tr.orders[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("order not found")
	}
	snapshot := t.order.Copy()
	return &snapshot, nil
}

// Position returns the delivery agent's current interpolated coordinate.
func (tr *Tracker) Position(id string) (domain.Coordinates, domain.OrderStatus, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	t, ok := tr.orders[id]
	if !ok {
		return domain.Coordinates{}, "", apperrors.NewNotFoundError("order not found")
	}

	pos := AgentPosition(
		t.order,
		t.enteredAt,
		time.Now(),
		tr.StepDuration(domain.StatusPickedUp),
		tr.StepDuration(domain.StatusInTransit),
	)
	return pos, t.order.Status, nil
}

// ApplySnapshot reconciles a pushed order snapshot with local state. Adopted
// snapshots bump the generation so the superseded state's timer becomes inert,
// then the timer chain resumes from the adopted status.
func (tr *Tracker) ApplySnapshot(pushed domain.Order) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	t, ok := tr.orders[pushed.ID]
	if !ok {
		tr.logger.Debug("snapshot for unknown order discarded", zap.String("orderId", pushed.ID))
		return
	}
	if t.closed {
		return
	}

	next, adopted := Reconcile(t.order, pushed)
	if !adopted {
		tr.logger.Debug("stale snapshot discarded",
			zap.String("orderId", pushed.ID),
			zap.String("localStatus", string(t.order.Status)),
			zap.String("pushedStatus", string(pushed.Status)),
		)
		return
	}

	from := t.order.Status
	t.order = next.Copy()
	t.generation++
	t.stopTimerLocked()
	t.enteredAt = time.Now()
	tr.scheduleLocked(t)

	tr.logger.Info("pushed snapshot adopted",
		zap.String("orderId", t.order.ID),
		zap.String("from", string(from)),
		zap.String("to", string(t.order.Status)),
	)
	tr.onTransition(from, t.order.Status)
	tr.notifyLocked(t)
}

// Cancel is the external override that short-circuits an order to a terminal
// non-lifecycle status and halts its timer.
func (tr *Tracker) Cancel(id string) (*domain.Order, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	t, ok := tr.orders[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("order not found")
	}
	if t.order.Status.Terminal() {
		return nil, apperrors.NewConflictError("order is already terminal")
	}

	from := t.order.Status
	t.order.Status = domain.StatusCancelled
	t.generation++
	t.stopTimerLocked()

	tr.logger.Info("order cancelled", zap.String("orderId", id), zap.String("from", string(from)))
	tr.onTransition(from, domain.StatusCancelled)
	tr.notifyLocked(t)

	snapshot := t.order.Copy()
	return &snapshot, nil
}

// Subscribe registers an observer notified synchronously after every
// transition of the order. Observers must not call back into the tracker.
// The returned cancel func removes the observer and is safe to call after
// Close.
func (tr *Tracker) Subscribe(id string, fn func(domain.Order)) (func(), error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	t, ok := tr.orders[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("order not found")
	}

	obsID := t.nextObs
	t.nextObs++
	t.observers[obsID] = fn

	return func() {
		tr.mu.Lock()
		defer tr.mu.Unlock()
		if t.observers != nil {
			delete(t.observers, obsID)
		}
	}, nil
}

// Close tears down an order's observation lifetime: the timer is stopped, the
// generation bumped so a leaked callback is a guaranteed no-op, and all
// observers dropped.
func (tr *Tracker) Close(id string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	t, ok := tr.orders[id]
	if !ok {
		return
	}

	t.closed = true
	t.generation++
	t.stopTimerLocked()
	t.observers = nil
	delete(tr.orders, id)
}

// advance is the single entry point for timer-driven transitions. expectGen
// is the generation the timer was scheduled under; any mismatch means the
// state that scheduled it is gone and the timer is stale.
func (tr *Tracker) advance(id string, expectGen uint64) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	t, ok := tr.orders[id]
	if !ok {
		return
	}
	if t.closed || t.generation != expectGen {
		return
	}

	next, ok := t.order.Status.Next()
	if !ok {
		return
	}

	from := t.order.Status
	t.order.Status = next
	t.generation++
	t.stopTimerLocked()
	t.enteredAt = time.Now()
	tr.scheduleLocked(t)

	tr.logger.Info("order advanced",
		zap.String("orderId", id),
		zap.String("from", string(from)),
		zap.String("to", string(next)),
	)
	tr.onTransition(from, next)
	tr.notifyLocked(t)
}

// scheduleLocked arms the single-shot timer for the order's current state.
// Terminal states get no timer. Callers hold tr.mu.
func (tr *Tracker) scheduleLocked(t *trackedOrder) {
	d := tr.StepDuration(t.order.Status)
	if d <= 0 {
		return
	}

	id := t.order.ID
	gen := t.generation
	t.timer = time.AfterFunc(d, func() {
		tr.advance(id, gen)
	})
}

func (tr *Tracker) notifyLocked(t *trackedOrder) {
	snapshot := t.order.Copy()
	for _, fn := range t.observers {
		fn(snapshot)
	}
}

func (tr *Tracker) remainingDuration(from domain.OrderStatus) time.Duration {
	return time.Duration(float64(tr.steps.Remaining(from)) / tr.accel)
}

func (t *trackedOrder) stopTimerLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
