package dto

import (
	"time"

	"tiffin/internal/domain"
)

type VendorDTO struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Cuisine     string         `json:"cuisine,omitempty"`
	Coordinates CoordinatesDTO `json:"coordinates"`
}

type AgentDTO struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Coordinates CoordinatesDTO `json:"coordinates"`
}

type AddressDTO struct {
	Text        string         `json:"text"`
	Coordinates CoordinatesDTO `json:"coordinates"`
}

// OrderSnapshot is the order wire shape, both the HTTP response body and the
// envelope the push channel delivers. Timestamps are absolute instants.
type OrderSnapshot struct {
	ID                string         `json:"id"`
	Status            string         `json:"status"`
	PlacedAt          time.Time      `json:"placedAt"`
	EstimatedDelivery time.Time      `json:"estimatedDelivery"`
	Vendor            VendorDTO      `json:"vendor"`
	Agent             AgentDTO       `json:"agent"`
	DeliveryAddress   AddressDTO     `json:"deliveryAddress"`
	Items             []CartItemDTO  `json:"items"`
	Subtotal          float64        `json:"subtotal"`
	DeliveryFee       float64        `json:"deliveryFee"`
	Taxes             float64        `json:"taxes"`
	Total             float64        `json:"total"`
	PaymentMethod     string         `json:"paymentMethod"`
	PaymentID         string         `json:"paymentId"`
	DeliveryMode      string         `json:"deliveryMode"`
	Notes             string         `json:"notes,omitempty"`
}

type PositionResponse struct {
	OrderID     string         `json:"orderId"`
	Status      string         `json:"status"`
	Coordinates CoordinatesDTO `json:"coordinates"`
}

func OrderSnapshotFromDomain(o domain.Order) OrderSnapshot {
	items := make([]CartItemDTO, len(o.Items))
	for i, item := range o.Items {
		items[i] = CartItemFromDomain(item)
	}
	return OrderSnapshot{
		ID:                o.ID,
		Status:            string(o.Status),
		PlacedAt:          o.PlacedAt,
		EstimatedDelivery: o.EstimatedDelivery,
		Vendor: VendorDTO{
			ID:      o.Vendor.ID,
			Name:    o.Vendor.Name,
			Cuisine: o.Vendor.Cuisine,
			Coordinates: CoordinatesDTO{
				Latitude:  o.Vendor.Coordinates.Latitude,
				Longitude: o.Vendor.Coordinates.Longitude,
			},
		},
		Agent: AgentDTO{
			ID:   o.Agent.ID,
			Name: o.Agent.Name,
			Coordinates: CoordinatesDTO{
				Latitude:  o.Agent.Coordinates.Latitude,
				Longitude: o.Agent.Coordinates.Longitude,
			},
		},
		DeliveryAddress: AddressDTO{
			Text: o.DeliveryAddress.Text,
			Coordinates: CoordinatesDTO{
				Latitude:  o.DeliveryAddress.Coordinates.Latitude,
				Longitude: o.DeliveryAddress.Coordinates.Longitude,
			},
		},
		Items:         items,
		Subtotal:      o.Subtotal,
		DeliveryFee:   o.DeliveryFee,
		Taxes:         o.Taxes,
		Total:         o.Total,
		PaymentMethod: string(o.PaymentMethod),
		PaymentID:     o.PaymentID,
		DeliveryMode:  string(o.DeliveryMode),
		Notes:         o.Notes,
	}
}

func (s OrderSnapshot) ToDomain() domain.Order {
	items := make([]domain.CartItem, len(s.Items))
	for i, d := range s.Items {
		items[i] = d.ToDomain()
	}
	return domain.Order{
		ID:                s.ID,
		Status:            domain.OrderStatus(s.Status),
		PlacedAt:          s.PlacedAt,
		EstimatedDelivery: s.EstimatedDelivery,
		Vendor: domain.Vendor{
			ID:      s.Vendor.ID,
			Name:    s.Vendor.Name,
			Cuisine: s.Vendor.Cuisine,
			Coordinates: domain.Coordinates{
				Latitude:  s.Vendor.Coordinates.Latitude,
				Longitude: s.Vendor.Coordinates.Longitude,
			},
		},
		Agent: domain.Agent{
			ID:   s.Agent.ID,
			Name: s.Agent.Name,
			Coordinates: domain.Coordinates{
				Latitude:  s.Agent.Coordinates.Latitude,
				Longitude: s.Agent.Coordinates.Longitude,
			},
		},
		DeliveryAddress: domain.Address{
			Text: s.DeliveryAddress.Text,
			Coordinates: domain.Coordinates{
				Latitude:  s.DeliveryAddress.Coordinates.Latitude,
				Longitude: s.DeliveryAddress.Coordinates.Longitude,
			},
		},
		Items:         items,
		Subtotal:      s.Subtotal,
		DeliveryFee:   s.DeliveryFee,
		Taxes:         s.Taxes,
		Total:         s.Total,
		PaymentMethod: domain.PaymentMethod(s.PaymentMethod),
		PaymentID:     s.PaymentID,
		DeliveryMode:  domain.DeliveryMode(s.DeliveryMode),
		Notes:         s.Notes,
	}
}
