package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tiffin/internal/domain"
	apperrors "tiffin/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) FindVendors(ctx context.Context) ([]domain.Vendor, error) {
	query := `
		SELECT id, name, cuisine, latitude, longitude
		FROM Vendors
		WHERE isActive = 1`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying vendors: %w", err)
	}
	defer rows.Close()

	var vendors []domain.Vendor
	for rows.Next() {
		var v domain.Vendor
		err := rows.Scan(&v.ID, &v.Name, &v.Cuisine, &v.Coordinates.Latitude, &v.Coordinates.Longitude)
		if err != nil {
			return nil, fmt.Errorf("scanning vendor row: %w", err)
		}
		vendors = append(vendors, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vendor rows: %w", err)
	}

	return vendors, nil
}

func (r *MySQLRepository) FindVendorByID(ctx context.Context, id string) (*domain.Vendor, error) {
	query := `
		SELECT id, name, cuisine, latitude, longitude
		FROM Vendors
		WHERE id = ?
		  AND isActive = 1`

	var v domain.Vendor
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Cuisine, &v.Coordinates.Latitude, &v.Coordinates.Longitude,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("vendor not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying vendor: %w", err)
	}

	return &v, nil
}

func (r *MySQLRepository) FindItemsByIDs(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, 0, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := fmt.Sprintf(`
		SELECT id, vendorId, name, description, price, category, isAvailable,
		       createdAt, updatedAt
		FROM MenuItems
		WHERE id IN (%s)
		  AND isDeleted = 0`,
		strings.Join(placeholders, ", "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var m domain.MenuItem
		err := rows.Scan(
			&m.ID, &m.VendorID, &m.Name, &m.Description, &m.Price,
			&m.Category, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item row: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu item rows: %w", err)
	}

	return items, nil
}

func (r *MySQLRepository) FindItemsByVendor(ctx context.Context, vendorID string) ([]domain.MenuItem, error) {
	query := `
		SELECT id, vendorId, name, description, price, category, isAvailable,
		       createdAt, updatedAt
		FROM MenuItems
		WHERE vendorId = ?
		  AND isDeleted = 0
		ORDER BY category, name`

	rows, err := r.db.QueryContext(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("querying vendor menu: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var m domain.MenuItem
		err := rows.Scan(
			&m.ID, &m.VendorID, &m.Name, &m.Description, &m.Price,
			&m.Category, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item row: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu item rows: %w", err)
	}

	return items, nil
}
