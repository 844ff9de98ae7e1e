package dto

import "tiffin/internal/domain"

type AddItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CoordinatesDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CartItemDTO struct {
	ItemID            string          `json:"itemId"`
	Name              string          `json:"name"`
	UnitPrice         float64         `json:"unitPrice"`
	Quantity          int             `json:"quantity"`
	VendorID          string          `json:"vendorId"`
	VendorName        string          `json:"vendorName"`
	VendorCoordinates *CoordinatesDTO `json:"vendorCoordinates,omitempty"`
}

type CartResponse struct {
	Items     []CartItemDTO `json:"items"`
	VendorID  string        `json:"vendorId,omitempty"`
	Subtotal  float64       `json:"subtotal"`
	ItemCount int           `json:"itemCount"`
}

// CartRecord is the durable per-session cart shape persisted to the store.
type CartRecord struct {
	Items []CartItemDTO `json:"items"`
}

func CartItemFromDomain(item domain.CartItem) CartItemDTO {
	d := CartItemDTO{
		ItemID:     item.ItemID,
		Name:       item.Name,
		UnitPrice:  item.UnitPrice,
		Quantity:   item.Quantity,
		VendorID:   item.VendorID,
		VendorName: item.VendorName,
	}
	if item.VendorCoordinates != nil {
		d.VendorCoordinates = &CoordinatesDTO{
			Latitude:  item.VendorCoordinates.Latitude,
			Longitude: item.VendorCoordinates.Longitude,
		}
	}
	return d
}

func (d CartItemDTO) ToDomain() domain.CartItem {
	item := domain.CartItem{
		ItemID:     d.ItemID,
		Name:       d.Name,
		UnitPrice:  d.UnitPrice,
		Quantity:   d.Quantity,
		VendorID:   d.VendorID,
		VendorName: d.VendorName,
	}
	if d.VendorCoordinates != nil {
		item.VendorCoordinates = &domain.Coordinates{
			Latitude:  d.VendorCoordinates.Latitude,
			Longitude: d.VendorCoordinates.Longitude,
		}
	}
	return item
}

func CartRecordFromDomain(cart *domain.Cart) CartRecord {
	items := make([]CartItemDTO, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemFromDomain(item)
	}
	return CartRecord{Items: items}
}

func (r CartRecord) ToDomain() *domain.Cart {
	items := make([]domain.CartItem, len(r.Items))
	for i, d := range r.Items {
		items[i] = d.ToDomain()
	}
	return &domain.Cart{Items: items}
}

func CartResponseFromDomain(cart *domain.Cart) CartResponse {
	items := make([]CartItemDTO, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemFromDomain(item)
	}
	return CartResponse{
		Items:     items,
		VendorID:  cart.VendorID(),
		Subtotal:  cart.Subtotal(),
		ItemCount: cart.ItemCount(),
	}
}
