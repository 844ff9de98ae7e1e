package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiffin/internal/domain"
	apperrors "tiffin/internal/errors"
)

type mockRepository struct {
	FindVendorsFunc       func(ctx context.Context) ([]domain.Vendor, error)
	FindVendorByIDFunc    func(ctx context.Context, id string) (*domain.Vendor, error)
	FindItemsByIDsFunc    func(ctx context.Context, ids []string) ([]domain.MenuItem, error)
	FindItemsByVendorFunc func(ctx context.Context, vendorID string) ([]domain.MenuItem, error)
}

func (m *mockRepository) FindVendors(ctx context.Context) ([]domain.Vendor, error) {
	return m.FindVendorsFunc(ctx)
}

func (m *mockRepository) FindVendorByID(ctx context.Context, id string) (*domain.Vendor, error) {
	return m.FindVendorByIDFunc(ctx, id)
}

func (m *mockRepository) FindItemsByIDs(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
	return m.FindItemsByIDsFunc(ctx, ids)
}

func (m *mockRepository) FindItemsByVendor(ctx context.Context, vendorID string) ([]domain.MenuItem, error) {
	return m.FindItemsByVendorFunc(ctx, vendorID)
}

func catalogItem(id, vendorID string, available bool) domain.MenuItem {
	return domain.MenuItem{
		ID:          id,
		VendorID:    vendorID,
		Name:        "Item " + id,
		Price:       120,
		Category:    "Mains",
		IsAvailable: available,
	}
}

func TestGetVendorMenu(t *testing.T) {
	repo := &mockRepository{
		FindVendorByIDFunc: func(ctx context.Context, id string) (*domain.Vendor, error) {
			assert.Equal(t, "v1", id)
			return &domain.Vendor{ID: "v1", Name: "Anna's"}, nil
		},
		FindItemsByVendorFunc: func(ctx context.Context, vendorID string) ([]domain.MenuItem, error) {
			return []domain.MenuItem{catalogItem("1", "v1", true), catalogItem("2", "v1", true)}, nil
		},
	}
	svc := NewService(repo)

	vendor, items, err := svc.GetVendorMenu(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, "Anna's", vendor.Name)
	assert.Len(t, items, 2)
}

func TestGetVendorMenu_UnknownVendor(t *testing.T) {
	repo := &mockRepository{
		FindVendorByIDFunc: func(ctx context.Context, id string) (*domain.Vendor, error) {
			return nil, apperrors.NewNotFoundError("vendor not found")
		},
	}
	svc := NewService(repo)

	_, _, err := svc.GetVendorMenu(context.Background(), "ghost")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestGetItemsByIDs_SplitsFoundAndMissing(t *testing.T) {
	repo := &mockRepository{
		FindItemsByIDsFunc: func(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
			return []domain.MenuItem{catalogItem("1", "v1", true)}, nil
		},
	}
	svc := NewService(repo)

	found, missing, err := svc.GetItemsByIDs(context.Background(), []string{"1", "2", "3"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "1", found[0].ID)
	assert.Equal(t, []string{"2", "3"}, missing)
}

func TestResolveItem(t *testing.T) {
	repo := &mockRepository{
		FindItemsByIDsFunc: func(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
			return []domain.MenuItem{catalogItem("1", "v1", true)}, nil
		},
		FindVendorByIDFunc: func(ctx context.Context, id string) (*domain.Vendor, error) {
			return &domain.Vendor{ID: "v1", Name: "Anna's"}, nil
		},
	}
	svc := NewService(repo)

	item, vendor, err := svc.ResolveItem(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)
	assert.Equal(t, 120.0, item.Price)
	assert.Equal(t, "v1", vendor.ID)
}

func TestResolveItem_UnknownItem(t *testing.T) {
	repo := &mockRepository{
		FindItemsByIDsFunc: func(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
			return nil, nil
		},
	}
	svc := NewService(repo)

	_, _, err := svc.ResolveItem(context.Background(), "ghost")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestResolveItem_UnavailableItemIsConflict(t *testing.T) {
	repo := &mockRepository{
		FindItemsByIDsFunc: func(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
			return []domain.MenuItem{catalogItem("1", "v1", false)}, nil
		},
	}
	svc := NewService(repo)

	_, _, err := svc.ResolveItem(context.Background(), "1")
	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
}

func TestListVendors_PropagatesRepositoryError(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := &mockRepository{
		FindVendorsFunc: func(ctx context.Context) ([]domain.Vendor, error) {
			return nil, dbErr
		},
	}
	svc := NewService(repo)

	_, err := svc.ListVendors(context.Background())
	assert.ErrorIs(t, err, dbErr)
}
