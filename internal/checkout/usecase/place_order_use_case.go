package usecase

import (
	"context"

	"go.uber.org/zap"

	"tiffin/internal/config"
	"tiffin/internal/domain"
	"tiffin/internal/dto"
	apperrors "tiffin/internal/errors"
)

type CartSource interface {
	Snapshot(ctx context.Context, key string) (*domain.Cart, error)
	Clear(ctx context.Context, key string) error
}

type CheckoutValidator interface {
	Validate(ctx context.Context, cart *domain.Cart, req dto.CheckoutRequest, actor *domain.Actor) (*dto.CheckoutIntent, error)
}

// PaymentGateway charges an amount and returns the payment id on success.
type PaymentGateway interface {
	Charge(ctx context.Context, amount float64, method domain.PaymentMethod) (string, error)
}

type OrderTracker interface {
	Create(ctx context.Context, intent dto.CheckoutIntent, paymentID string) (*domain.Order, error)
}

// PlaceOrderUseCase drives checkout: snapshot the cart, validate, charge,
// commit the order, clear the cart. Any collaborator failure aborts the
// submission with the cart left untouched.
type PlaceOrderUseCase struct {
	carts     CartSource
	validator CheckoutValidator
	payments  PaymentGateway
	tracker   OrderTracker
	pricing   config.PricingConfig
	logger    *zap.Logger
}

func NewPlaceOrderUseCase(
	carts CartSource,
	validator CheckoutValidator,
	payments PaymentGateway,
	tracker OrderTracker,
	pricing config.PricingConfig,
	logger *zap.Logger,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		carts:     carts,
		validator: validator,
		payments:  payments,
		tracker:   tracker,
		pricing:   pricing,
		logger:    logger,
	}
}

func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, actor *domain.Actor, req dto.CheckoutRequest) (*domain.Order, error) {
	if actor == nil || actor.ID == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeAuthRequired, "authentication required")
	}

	uc.logger.Info("checkout started",
		zap.String("actorId", actor.ID),
		zap.String("deliveryMode", req.DeliveryMode),
	)

	cart, err := uc.carts.Snapshot(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	intent, err := uc.validator.Validate(ctx, cart, req, actor)
	if err != nil {
		return nil, err
	}

	// Charge the full order total. The tracker derives the same figures from
	// the same immutable items and pricing, so the paid amount equals the
	// total it records.
	deliveryFee := 0.0
	if intent.DeliveryMode == domain.ModeAgentDelivery {
		deliveryFee = uc.pricing.DeliveryFee
	}
	taxes := intent.Subtotal * uc.pricing.TaxRate
	amount := intent.Subtotal + deliveryFee + taxes

	paymentID, err := uc.payments.Charge(ctx, amount, intent.PaymentMethod)
	if err != nil {
		uc.logger.Warn("payment declined", zap.String("actorId", actor.ID), zap.Error(err))
		return nil, apperrors.NewCollaboratorError("payment", "charge failed", err)
	}

	order, err := uc.tracker.Create(ctx, *intent, paymentID)
	if err != nil {
		uc.logger.Error("order creation failed after charge",
			zap.String("actorId", actor.ID),
			zap.String("paymentId", paymentID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.carts.Clear(ctx, actor.ID); err != nil {
		// The order is committed; a cart that failed to clear is an
		// annoyance, not a consistency problem.
		uc.logger.Warn("clearing cart after checkout", zap.String("actorId", actor.ID), zap.Error(err))
	}

	uc.logger.Info("order placed",
		zap.String("actorId", actor.ID),
		zap.String("orderId", order.ID),
		zap.Float64("total", order.Total),
	)
	return order, nil
}
