package controller

import (
	"context"
	"net/http"

	"tiffin/internal/domain"
	"tiffin/internal/dto"
	"tiffin/internal/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MenuService interface {
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	GetVendorMenu(ctx context.Context, vendorID string) (*domain.Vendor, []domain.MenuItem, error)
}

type MenuController struct {
	service MenuService
	logger  *zap.Logger
}

func NewMenuController(service MenuService, logger *zap.Logger) *MenuController {
	return &MenuController{
		service: service,
		logger:  logger,
	}
}

func (c *MenuController) ListVendors(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	vendors, err := c.service.ListVendors(r.Context())
	if err != nil {
		c.logger.Error("listing vendors", zap.String("traceId", traceID), zap.Error(err))
		httpx.WriteError(w, traceID, err)
		return
	}

	resp := dto.VendorsResponse{Vendors: make([]dto.VendorDTO, len(vendors))}
	for i, v := range vendors {
		resp.Vendors[i] = dto.VendorFromDomain(v)
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (c *MenuController) GetVendorMenu(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	vendorID := chi.URLParam(r, "vendorId")

	vendor, items, err := c.service.GetVendorMenu(r.Context(), vendorID)
	if err != nil {
		c.logger.Warn("fetching vendor menu", zap.String("traceId", traceID), zap.String("vendorId", vendorID), zap.Error(err))
		httpx.WriteError(w, traceID, err)
		return
	}

	resp := dto.VendorMenuResponse{
		Vendor: dto.VendorFromDomain(*vendor),
		Items:  make([]dto.MenuItemDTO, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = dto.MenuItemFromDomain(item)
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
