package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"tiffin/internal/domain"
	"tiffin/internal/dto"
	apperrors "tiffin/internal/errors"
	"tiffin/internal/httpx"
	"tiffin/internal/identity"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartStore interface {
	AddItem(ctx context.Context, key string, item domain.CartItem) (*domain.Cart, error)
	RemoveItem(ctx context.Context, key, itemID string) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, key, itemID string, quantity int) (*domain.Cart, error)
	Decrease(ctx context.Context, key, itemID string) (*domain.Cart, error)
	Clear(ctx context.Context, key string) error
	Get(ctx context.Context, key string) (*domain.Cart, error)
}

// ItemResolver looks an item up in the menu catalog. The cart snapshot is
// built from catalog data, never from client-supplied prices.
type ItemResolver interface {
	ResolveItem(ctx context.Context, itemID string) (*domain.MenuItem, *domain.Vendor, error)
}

type CartController struct {
	store    CartStore
	resolver ItemResolver
	logger   *zap.Logger
}

func NewCartController(store CartStore, resolver ItemResolver, logger *zap.Logger) *CartController {
	return &CartController{
		store:    store,
		resolver: resolver,
		logger:   logger,
	}
}

func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	key, ok := cartKey(r)
	if !ok {
		httpx.WriteError(w, traceID, authRequired())
		return
	}

	cart, err := c.store.Get(r.Context(), key)
	if err != nil {
		c.logger.Error("fetching cart", zap.String("traceId", traceID), zap.Error(err))
		httpx.WriteError(w, traceID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.CartResponseFromDomain(cart))
}

func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	key, ok := cartKey(r)
	if !ok {
		httpx.WriteError(w, traceID, authRequired())
		return
	}

	var req dto.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		httpx.WriteError(w, traceID, apperrors.NewValidationError(
			apperrors.CodeInvalidItem,
			"invalid JSON body",
			apperrors.ValidationDetail{Field: "body", Message: "request body must be valid JSON"},
		))
		return
	}

	if req.Quantity < 1 {
		httpx.WriteError(w, traceID, apperrors.NewValidationError(
			apperrors.CodeInvalidItem,
			"invalid item",
			apperrors.ValidationDetail{Field: "quantity", Message: "quantity must be at least 1"},
		))
		return
	}

	menuItem, vendor, err := c.resolver.ResolveItem(r.Context(), req.ItemID)
	if err != nil {
		logger.Warn("resolving menu item", zap.String("itemId", req.ItemID), zap.Error(err))
		httpx.WriteError(w, traceID, err)
		return
	}

	coords := vendor.Coordinates
	item := domain.CartItem{
		ItemID:            menuItem.ID,
		Name:              menuItem.Name,
		UnitPrice:         menuItem.Price,
		Quantity:          req.Quantity,
		VendorID:          vendor.ID,
		VendorName:        vendor.Name,
		VendorCoordinates: &coords,
	}

	cart, err := c.store.AddItem(r.Context(), key, item)
	if err != nil {
		httpx.WriteError(w, traceID, err)
		return
	}

	logger.Info("item added to cart",
		zap.String("itemId", menuItem.ID),
		zap.String("vendorId", vendor.ID),
		zap.Int("quantity", req.Quantity),
	)
	httpx.WriteJSON(w, http.StatusOK, dto.CartResponseFromDomain(cart))
}

func (c *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	itemID := chi.URLParam(r, "itemId")

	key, ok := cartKey(r)
	if !ok {
		httpx.WriteError(w, traceID, authRequired())
		return
	}

	var req dto.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, traceID, apperrors.NewValidationError(
			apperrors.CodeInvalidQuantity,
			"invalid JSON body",
			apperrors.ValidationDetail{Field: "body", Message: "request body must be valid JSON"},
		))
		return
	}

	cart, err := c.store.UpdateQuantity(r.Context(), key, itemID, req.Quantity)
	if err != nil {
		httpx.WriteError(w, traceID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.CartResponseFromDomain(cart))
}

func (c *CartController) Decrease(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	itemID := chi.URLParam(r, "itemId")

	key, ok := cartKey(r)
	if !ok {
		httpx.WriteError(w, traceID, authRequired())
		return
	}

	cart, err := c.store.Decrease(r.Context(), key, itemID)
	if err != nil {
		httpx.WriteError(w, traceID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.CartResponseFromDomain(cart))
}

func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	itemID := chi.URLParam(r, "itemId")

	key, ok := cartKey(r)
	if !ok {
		httpx.WriteError(w, traceID, authRequired())
		return
	}

	cart, err := c.store.RemoveItem(r.Context(), key, itemID)
	if err != nil {
		httpx.WriteError(w, traceID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.CartResponseFromDomain(cart))
}

func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	key, ok := cartKey(r)
	if !ok {
		httpx.WriteError(w, traceID, authRequired())
		return
	}

	if err := c.store.Clear(r.Context(), key); err != nil {
		httpx.WriteError(w, traceID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.CartResponse{Items: []dto.CartItemDTO{}})
}

// cartKey scopes a cart to the authenticated actor.
func cartKey(r *http.Request) (string, bool) {
	actor, ok := identity.ActorFrom(r.Context())
	if !ok {
		return "", false
	}
	return actor.ID, true
}

func authRequired() error {
	return apperrors.NewValidationError(apperrors.CodeAuthRequired, "authentication required")
}
