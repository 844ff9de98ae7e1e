package dto

import "tiffin/internal/domain"

type MenuItemDTO struct {
	ID          string  `json:"id"`
	VendorID    string  `json:"vendorId"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}

type VendorsResponse struct {
	Vendors []VendorDTO `json:"vendors"`
}

type VendorMenuResponse struct {
	Vendor VendorDTO     `json:"vendor"`
	Items  []MenuItemDTO `json:"items"`
}

func MenuItemFromDomain(item domain.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID,
		VendorID:    item.VendorID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		IsAvailable: item.IsAvailable,
	}
}

func VendorFromDomain(v domain.Vendor) VendorDTO {
	return VendorDTO{
		ID:      v.ID,
		Name:    v.Name,
		Cuisine: v.Cuisine,
		Coordinates: CoordinatesDTO{
			Latitude:  v.Coordinates.Latitude,
			Longitude: v.Coordinates.Longitude,
		},
	}
}
