package collaborator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiffin/internal/domain"
)

func TestSimGeocoder_ResolvesStably(t *testing.T) {
	geocoder := NewSimGeocoder()
	ctx := context.Background()

	first, err := geocoder.ResolveAddress(ctx, "14 Hill Road, Bandra West")
	require.NoError(t, err)
	require.NotNil(t, first)

	again, err := geocoder.ResolveAddress(ctx, "  14 HILL Road, Bandra West ")
	require.NoError(t, err)
	require.NotNil(t, again)

	assert.Equal(t, *first, *again)

	other, err := geocoder.ResolveAddress(ctx, "221B Linking Road, Khar")
	require.NoError(t, err)
	require.NotNil(t, other)
	assert.NotEqual(t, *first, *other)
}

func TestSimGeocoder_StaysNearTheCityCenter(t *testing.T) {
	geocoder := NewSimGeocoder()

	addresses := []string{
		"14 Hill Road, Bandra West",
		"Churchgate Station, Fort",
		"Dadar Flower Market",
	}
	for _, addr := range addresses {
		coords, err := geocoder.ResolveAddress(context.Background(), addr)
		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InDelta(t, baseLatitude, coords.Latitude, 0.051)
		assert.InDelta(t, baseLongitude, coords.Longitude, 0.051)
	}
}

func TestSimGeocoder_ShortTextIsNotFound(t *testing.T) {
	geocoder := NewSimGeocoder()

	for _, text := range []string{"", "   ", "abc", " ab "} {
		coords, err := geocoder.ResolveAddress(context.Background(), text)
		require.NoError(t, err)
		assert.Nil(t, coords)
	}
}

func TestSimPaymentGateway_Charge(t *testing.T) {
	gateway := NewSimPaymentGateway()
	ctx := context.Background()

	id, err := gateway.Charge(ctx, 355, domain.PaymentUpi)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "pay_"))

	other, err := gateway.Charge(ctx, 355, domain.PaymentCard)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestSimPaymentGateway_AcceptsZeroCharge(t *testing.T) {
	gateway := NewSimPaymentGateway()

	id, err := gateway.Charge(context.Background(), 0, domain.PaymentCard)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "pay_"))
}

func TestSimPaymentGateway_RejectsBadCharges(t *testing.T) {
	gateway := NewSimPaymentGateway()
	ctx := context.Background()

	_, err := gateway.Charge(ctx, -10, domain.PaymentCard)
	assert.Error(t, err)

	_, err = gateway.Charge(ctx, 100, domain.PaymentMethod("IOU"))
	assert.Error(t, err)
}
