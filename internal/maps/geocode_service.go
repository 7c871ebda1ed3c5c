package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"wayfare/internal/types"
)

// GeocodeService resolves free-text drop-off addresses via the Google
// Geocoding API. It is optional: when no API key is configured the cab
// service approximates unknown drop-offs instead.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a new GeocodeService with the given API key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Geocode returns the first match for the address. found is false when the
// API answers with no results; callers treat errors and misses the same way.
func (s *GeocodeService) Geocode(ctx context.Context, address string) (types.Point, bool, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return types.Point{}, false, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return types.Point{}, false, nil
	}
	loc := results[0].Geometry.Location
	return types.Point{Lat: loc.Lat, Lng: loc.Lng}, true, nil
}
