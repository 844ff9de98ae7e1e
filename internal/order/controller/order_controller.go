package controller

import (
	"net/http"

	"tiffin/internal/domain"
	"tiffin/internal/dto"
	"tiffin/internal/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Tracker interface {
	Get(id string) (*domain.Order, error)
	Position(id string) (domain.Coordinates, domain.OrderStatus, error)
	Cancel(id string) (*domain.Order, error)
	Close(id string)
}

type OrderController struct {
	tracker Tracker
	logger  *zap.Logger
}

func NewOrderController(tracker Tracker, logger *zap.Logger) *OrderController {
	return &OrderController{
		tracker: tracker,
		logger:  logger,
	}
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	orderID := chi.URLParam(r, "orderId")

	order, err := c.tracker.Get(orderID)
	if err != nil {
		httpx.WriteError(w, traceID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.OrderSnapshotFromDomain(*order))
}

func (c *OrderController) GetPosition(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	orderID := chi.URLParam(r, "orderId")

	pos, status, err := c.tracker.Position(orderID)
	if err != nil {
		httpx.WriteError(w, traceID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.PositionResponse{
		OrderID: orderID,
		Status:  string(status),
		Coordinates: dto.CoordinatesDTO{
			Latitude:  pos.Latitude,
			Longitude: pos.Longitude,
		},
	})
}

func (c *OrderController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	orderID := chi.URLParam(r, "orderId")

	order, err := c.tracker.Cancel(orderID)
	if err != nil {
		c.logger.Warn("cancelling order", zap.String("traceId", traceID), zap.String("orderId", orderID), zap.Error(err))
		httpx.WriteError(w, traceID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.OrderSnapshotFromDomain(*order))
}

// CloseOrder tears down the order's observation lifetime.
func (c *OrderController) CloseOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	c.tracker.Close(orderID)
	w.WriteHeader(http.StatusNoContent)
}
