package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tiffin/internal/domain"
	"tiffin/internal/dto"
	apperrors "tiffin/internal/errors"
	"tiffin/internal/httpx"
	"tiffin/internal/identity"
)

type PlaceOrderUseCase interface {
	PlaceOrder(ctx context.Context, actor *domain.Actor, req dto.CheckoutRequest) (*domain.Order, error)
}

type CheckoutController struct {
	useCase PlaceOrderUseCase
	logger  *zap.Logger
}

func NewCheckoutController(useCase PlaceOrderUseCase, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	actor, ok := identity.ActorFrom(r.Context())
	if !ok {
		httpx.WriteError(w, traceID, apperrors.NewValidationError(apperrors.CodeAuthRequired, "authentication required"))
		return
	}

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		httpx.WriteError(w, traceID, apperrors.NewValidationError(
			apperrors.CodeInvalidItem,
			"invalid JSON body",
			apperrors.ValidationDetail{Field: "body", Message: "request body must be valid JSON"},
		))
		return
	}

	order, err := c.useCase.PlaceOrder(r.Context(), actor, req)
	if err != nil {
		if _, isValidation := apperrors.IsValidationError(err); !isValidation {
			logger.Warn("checkout failed", zap.Error(err))
		}
		httpx.WriteError(w, traceID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, dto.OrderSnapshotFromDomain(*order))
}
