package service

import (
	"context"

	"tiffin/internal/domain"
	apperrors "tiffin/internal/errors"
)

type Repository interface {
	FindVendors(ctx context.Context) ([]domain.Vendor, error)
	FindVendorByID(ctx context.Context, id string) (*domain.Vendor, error)
	FindItemsByIDs(ctx context.Context, ids []string) ([]domain.MenuItem, error)
	FindItemsByVendor(ctx context.Context, vendorID string) ([]domain.MenuItem, error)
}

type MenuService struct {
	repo Repository
}

func NewService(repo Repository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.repo.FindVendors(ctx)
}

func (s *MenuService) GetVendorMenu(ctx context.Context, vendorID string) (*domain.Vendor, []domain.MenuItem, error) {
	vendor, err := s.repo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.repo.FindItemsByVendor(ctx, vendorID)
	if err != nil {
		return nil, nil, err
	}

	return vendor, items, nil
}

// GetItemsByIDs returns the catalog items matching ids and the ids that did
// not resolve.
func (s *MenuService) GetItemsByIDs(ctx context.Context, ids []string) ([]domain.MenuItem, []string, error) {
	found, err := s.repo.FindItemsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	foundSet := make(map[string]struct{}, len(found))
	for _, m := range found {
		foundSet[m.ID] = struct{}{}
	}

	var notFoundIDs []string
	for _, id := range ids {
		if _, ok := foundSet[id]; !ok {
			notFoundIDs = append(notFoundIDs, id)
		}
	}

	return found, notFoundIDs, nil
}

// ResolveItem looks up a single available menu item and its vendor. The cart
// builds its priced snapshot from what this returns, never from client input.
func (s *MenuService) ResolveItem(ctx context.Context, itemID string) (*domain.MenuItem, *domain.Vendor, error) {
	found, _, err := s.GetItemsByIDs(ctx, []string{itemID})
	if err != nil {
		return nil, nil, err
	}
	if len(found) == 0 {
		return nil, nil, apperrors.NewNotFoundError("menu item not found")
	}

	item := found[0]
	if !item.IsAvailable {
		return nil, nil, apperrors.NewConflictError("menu item is not available")
	}

	vendor, err := s.repo.FindVendorByID(ctx, item.VendorID)
	if err != nil {
		return nil, nil, err
	}

	return &item, vendor, nil
}
