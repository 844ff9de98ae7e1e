package collaborator

import (
	"context"
	"hash/fnv"
	"strings"

	"tiffin/internal/domain"
)

// Base coordinate the simulated city is centered on (Mumbai).
const (
	baseLatitude  = 19.0760
	baseLongitude = 72.8777
)

// SimGeocoder stands in for the external address-to-coordinate service. It
// resolves any plausible address text to a stable pseudo-random coordinate
// near the city center, so the same address always maps to the same point.
// The hook point for a real geocoding backend is the Geocoder interface it
// implements.
type SimGeocoder struct{}

func NewSimGeocoder() *SimGeocoder {
	return &SimGeocoder{}
}

func (g *SimGeocoder) ResolveAddress(ctx context.Context, text string) (*domain.Coordinates, error) {
	text = strings.TrimSpace(text)
	if len(text) < 5 {
		// Too short to plausibly geocode: the real service reports not found.
		return nil, nil
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToLower(text)))
	sum := h.Sum64()

	// Spread addresses over roughly a 0.1 degree box around the center.
	latOffset := (float64(sum&0xFFFF)/0xFFFF - 0.5) * 0.1
	lonOffset := (float64((sum>>16)&0xFFFF)/0xFFFF - 0.5) * 0.1

	return &domain.Coordinates{
		Latitude:  baseLatitude + latOffset,
		Longitude: baseLongitude + lonOffset,
	}, nil
}
