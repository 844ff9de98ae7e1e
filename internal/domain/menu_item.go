package domain

import "time"

type MenuItem struct {
	ID          string
	VendorID    string
	Name        string
	Description string
	Price       float64
	Category    string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
