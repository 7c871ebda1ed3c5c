// README: Location registry; exact-match coordinate resolution with graceful drop-off degradation.
package location

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"wayfare/internal/types"
)

var ErrUnknownLocation = errors.New("unknown location")

// ApproximatedSuffix marks drop-off names that could not be resolved exactly.
const ApproximatedSuffix = " (Approximated)"

// Geocoder resolves free-text addresses to coordinates. Optional: the registry
// works without one, approximating unknown drop-offs near the pickup point.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (types.Point, bool, error)
}

// Registry maps named locations to coordinates. Built once at process start
// and read-only afterwards, except for hotel registration which happens only
// during startup wiring.
type Registry struct {
	mu       sync.RWMutex
	airports map[string]types.Point
	hotels   map[string]types.Point
	rng      *rand.Rand
	geocoder Geocoder
}

type Option func(*Registry)

func WithGeocoder(g Geocoder) Option {
	return func(r *Registry) { r.geocoder = g }
}

// NewRegistry builds the registry from the static tables. rng may be nil, in
// which case a time-seeded source is used; tests pass a fixed seed.
func NewRegistry(rng *rand.Rand, opts ...Option) *Registry {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r := &Registry{
		airports: make(map[string]types.Point, len(airportCoordinates)+len(usCityAirports)),
		hotels:   make(map[string]types.Point, len(hotelCoordinates)),
		rng:      rng,
	}
	for name, pt := range airportCoordinates {
		r.airports[name] = pt
	}
	for _, name := range usCityAirports {
		if _, ok := r.airports[name]; !ok {
			r.airports[name] = types.Point{
				Lat: 25.0 + rng.Float64()*24.0,
				Lng: -125.0 + rng.Float64()*58.0,
			}
		}
	}
	for name, pt := range hotelCoordinates {
		r.hotels[name] = pt
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Resolve looks up a pickup location by exact name. Unknown names are a hard
// validation error for the caller.
func (r *Registry) Resolve(name string) (types.Point, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if pt, ok := r.airports[name]; ok {
		return pt, nil
	}
	return types.Point{}, ErrUnknownLocation
}

// RegisterHotel adds a drop-off coordinate, typically seeded from the hotel
// catalog during startup.
func (r *Registry) RegisterHotel(name string, pt types.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hotels[name]; !ok {
		r.hotels[name] = pt
	}
}

// AirportCoordinate returns the anchor point for a city airport name, used
// when deriving catalog hotel coordinates.
func (r *Registry) AirportCoordinate(name string) (types.Point, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pt, ok := r.airports[name]
	return pt, ok
}

// AirportNames lists every pickup location that should receive a driver pool.
// The bare city alias is excluded, matching the fleet's coverage rules.
func (r *Registry) AirportNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.airports))
	for name := range r.airports {
		if strings.Contains(name, "(NYC)") {
			continue
		}
		names = append(names, name)
	}
	return names
}

// ResolveDropoff never fails. Exact matches win; then the optional geocoder;
// otherwise the drop-off is approximated near the pickup point and the display
// name is marked accordingly.
func (r *Registry) ResolveDropoff(ctx context.Context, name string, pickup types.Point) (types.Point, string) {
	trimmed := strings.TrimSpace(name)

	r.mu.RLock()
	pt, ok := r.hotels[trimmed]
	r.mu.RUnlock()
	if ok {
		return pt, trimmed
	}

	if r.geocoder != nil {
		if pt, found, err := r.geocoder.Geocode(ctx, trimmed); err == nil && found {
			return pt, trimmed
		}
	}

	r.mu.Lock()
	approx := types.Point{
		Lat: pickup.Lat + (r.rng.Float64()*0.2 - 0.1),
		Lng: pickup.Lng + (r.rng.Float64()*0.2 - 0.1),
	}
	r.mu.Unlock()
	return approx, trimmed + ApproximatedSuffix
}
