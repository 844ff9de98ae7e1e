package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testOrder() Order {
	return Order{
		ID:       "o1",
		Status:   StatusPlaced,
		PlacedAt: time.Now(),
		Vendor: Vendor{
			ID:          "v1",
			Name:        "Annapurna Tiffins",
			Coordinates: Coordinates{Latitude: 19.07, Longitude: 72.87},
		},
		Agent: Agent{ID: "a1", Name: "Ramesh"},
		DeliveryAddress: Address{
			Text:        "12 Marine Drive",
			Coordinates: Coordinates{Latitude: 18.94, Longitude: 72.82},
		},
		Items: []CartItem{
			{ItemID: "1", Name: "Veg Thali", UnitPrice: 100, Quantity: 2, VendorID: "v1"},
		},
		Subtotal:      200,
		DeliveryFee:   40,
		Taxes:         10,
		Total:         250,
		PaymentMethod: PaymentUpi,
		PaymentID:     "pay_1",
		DeliveryMode:  ModeAgentDelivery,
	}
}

func TestOrder_ConsistentTotals(t *testing.T) {
	order := testOrder()
	assert.True(t, order.ConsistentTotals())

	order.Total = 999
	assert.False(t, order.ConsistentTotals())

	order = testOrder()
	order.Subtotal = 150
	assert.False(t, order.ConsistentTotals())
}

func TestOrder_Copy_IsDeep(t *testing.T) {
	coords := Coordinates{Latitude: 19.07, Longitude: 72.87}
	order := testOrder()
	order.Items[0].VendorCoordinates = &coords

	cp := order.Copy()
	cp.Items[0].Quantity = 99
	cp.Items[0].VendorCoordinates.Latitude = 0

	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 19.07, order.Items[0].VendorCoordinates.Latitude)
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleRestaurant.IsValid())
	assert.True(t, RoleDabbawala.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("GUEST").IsValid())
}
