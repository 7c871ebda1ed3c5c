// README: Booking orchestrator; validates input, sequences estimates, class choice, and driver selection.
package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"wayfare/internal/modules/estimate"
	"wayfare/internal/modules/fleet"
	"wayfare/internal/modules/location"
	"wayfare/internal/modules/recommend"
	"wayfare/internal/observability"
	"wayfare/internal/types"
)

var (
	ErrBadSchedule   = errors.New("invalid scheduled time format, use ISO 8601")
	ErrUnknownPickup = errors.New("arrival airport is not mapped to coordinates")
	ErrBadRequest    = errors.New("bad request")
	ErrNoDrivers     = errors.New("no drivers available for the chosen or economy ride class")
)

// defaultTripDuration backs the arrival computation when the chosen class is
// somehow absent from the estimate set.
const defaultTripDuration = 1200 * time.Second

type Service struct {
	registry  *location.Registry
	estimator *estimate.Generator
	fleet     *fleet.Index
	engine    *recommend.Service

	// mu guards rng; bookings run on concurrent requests.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(registry *location.Registry, estimator *estimate.Generator, idx *fleet.Index, engine *recommend.Service, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		registry:  registry,
		estimator: estimator,
		fleet:     idx,
		engine:    engine,
		rng:       rng,
	}
}

// Book runs the full flow: validate, resolve, estimate, select a class,
// select a driver, compose. Validation failures and driver exhaustion reject
// the request; everything else degrades gracefully.
func (s *Service) Book(ctx context.Context, req Request) (*Result, error) {
	arrival, err := time.Parse(time.RFC3339, req.Scheduled)
	if err != nil {
		observability.BookingsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: %q", ErrBadSchedule, req.Scheduled)
	}
	if req.NumPassengers <= 0 {
		observability.BookingsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: num_passengers must be positive", ErrBadRequest)
	}

	var preferred types.RideClass
	hasPreference := false
	if req.RideType != "" {
		preferred, err = types.ParseRideClass(req.RideType)
		if err != nil {
			observability.BookingsTotal.WithLabelValues("rejected").Inc()
			return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		hasPreference = true
	}

	pickup, err := s.registry.Resolve(req.Airport)
	if err != nil {
		observability.BookingsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: %q", ErrUnknownPickup, req.Airport)
	}

	// Drop-off resolution never fails; unknown names are approximated.
	dropoff, dropDisplay := s.registry.ResolveDropoff(ctx, req.DropLocation, pickup)

	estimates := s.estimator.Estimate(pickup, dropoff)

	chosen, details := s.selectClass(ctx, req, estimates, dropDisplay, preferred, hasPreference)

	driver, chosen, err := s.selectDriver(req.Airport, chosen)
	if err != nil {
		observability.BookingsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	s.mu.Lock()
	deplaning := time.Duration(15+s.rng.Intn(16)) * time.Minute
	requestID := fmt.Sprintf("REQ-%d", 1000+s.rng.Intn(9000))
	s.mu.Unlock()

	pickupTime := arrival.Add(deplaning + time.Duration(driver.ETA)*time.Minute)

	tripDuration := defaultTripDuration
	if e, ok := estimates[chosen]; ok {
		tripDuration = time.Duration(e.Duration) * time.Second
	}
	arrivalAtDropoff := pickupTime.Add(tripDuration)

	observability.BookingsTotal.WithLabelValues("accepted").Inc()
	return &Result{
		RequestID:             requestID,
		Status:                StatusAccepted,
		Driver:                driver,
		Vehicle:               splitVehicle(driver),
		PickupTime:            pickupTime.Format(time.RFC3339),
		EstimatedArrival:      arrivalAtDropoff.Format(time.RFC3339),
		RecommendationDetails: details,
		ChosenRideType:        chosen,
		Estimates:             estimates.List(),
	}, nil
}

// selectClass honors an available explicit preference directly; anything else
// goes through the recommendation engine.
func (s *Service) selectClass(ctx context.Context, req Request, estimates estimate.ByClass, dropDisplay string, preferred types.RideClass, hasPreference bool) (types.RideClass, recommend.Result) {
	if hasPreference {
		if len(s.fleet.DriversAt(req.Airport, preferred)) > 0 {
			return preferred, recommend.Result{
				Class:  preferred,
				Reason: fmt.Sprintf("User preferred %s and drivers are available at %s.", preferred, req.Airport),
			}
		}
		// Preferred class has no drivers here; let the engine decide with
		// that context attached.
		prefs := fmt.Sprintf("%s (Preferred %s but none available at arrival airport).", req.UserPrefs, preferred)
		details := s.engine.Recommend(ctx, recommend.QueryFor(prefs, estimates, req.Airport, dropDisplay, req.NumPassengers))
		return details.Class, details
	}

	details := s.engine.Recommend(ctx, recommend.QueryFor(req.UserPrefs, estimates, req.Airport, dropDisplay, req.NumPassengers))
	return details.Class, details
}

// selectDriver picks uniformly from the chosen class's pool, substituting
// economy when that pool is empty. Never fabricates a driver.
func (s *Service) selectDriver(airport string, chosen types.RideClass) (fleet.Driver, types.RideClass, error) {
	pool := s.fleet.DriversAt(airport, chosen)
	if len(pool) == 0 && chosen != types.ClassEconomy {
		pool = s.fleet.DriversAt(airport, types.ClassEconomy)
		if len(pool) > 0 {
			chosen = types.ClassEconomy
		}
	}
	driver, err := s.fleet.PickRandom(pool)
	if err != nil {
		return fleet.Driver{}, chosen, fmt.Errorf("%w at %s", ErrNoDrivers, airport)
	}
	return driver, chosen, nil
}

func splitVehicle(d fleet.Driver) Vehicle {
	fields := strings.Fields(d.Car)
	v := Vehicle{LicensePlate: d.LicensePlate}
	if len(fields) > 0 {
		v.Make = fields[0]
		v.Model = strings.Join(fields[1:], " ")
	}
	return v
}
