// README: Travel planner; sequences flight, hotel and cab and keeps the latest itinerary.
package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"wayfare/internal/modules/booking"
	"wayfare/internal/modules/flight"
	"wayfare/internal/modules/hotel"
)

var (
	ErrNoFlights    = errors.New("no valid flights found")
	ErrNoHotels     = errors.New("no hotels found for the selected city")
	ErrNoItinerary  = errors.New("no itinerary generated yet")
	ErrMissingSteps = errors.New("missing required plan sections")
)

// airportNameByIATA maps arrival codes onto the cab registry's airport names.
// Codes outside the table pass through unchanged and the cab service rejects
// the ones it cannot place.
var airportNameByIATA = map[string]string{
	"HYD": "Hyderabad Airport (HYD)",
	"DEL": "Indira Gandhi International",
	"LAX": "Los Angeles International",
	"LAS": "Harry Reid International",
	"BOS": "Logan International",
	"SFO": "San Francisco International",
	"JFK": "John F. Kennedy International",
	"LGA": "LaGuardia",
	"NYC": "New York (NYC)",
	"ABL": "Ambler",
	"ABE": "Lehigh Valley International",
	"ABQ": "Albuquerque International",
	"ACY": "Atlantic City International",
	"ADD": "Bole International",
}

// minPickupGap is the smallest acceptable lead between flight arrival and cab
// pickup; rebookOffset is the schedule pushed on a re-book.
const (
	minPickupGap = 10 * time.Minute
	rebookOffset = 20 * time.Minute
)

type Service struct {
	clients *Clients
	logger  *slog.Logger

	mu     sync.RWMutex
	latest *Itinerary
}

func NewService(clients *Clients, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{clients: clients, logger: logger}
}

// Plan runs the three agents in order: the first returned flight fixes the
// cab schedule and pickup airport, the first hotel offer fixes the drop-off.
// A pickup landing too close to the flight arrival triggers one re-book at
// arrival plus twenty minutes.
func (s *Service) Plan(ctx context.Context, req PlanRequest) (*Itinerary, error) {
	if req.FlightDetails.Source == "" || req.FlightDetails.Destination == "" {
		return nil, fmt.Errorf("%w: flightdetails", ErrMissingSteps)
	}
	if req.HotelDetails.CityName == "" {
		return nil, fmt.Errorf("%w: hoteldetails", ErrMissingSteps)
	}

	flights, err := s.clients.SearchFlights(ctx, flight.SearchRequest{
		Source:      req.FlightDetails.Source,
		Destination: req.FlightDetails.Destination,
		UntilDate:   req.FlightDetails.UntilDate,
		Airline:     req.FlightDetails.Airline,
	})
	if err != nil {
		return nil, err
	}
	if flights.Status != "success" || len(flights.Flights) == 0 {
		return nil, ErrNoFlights
	}
	selected := flights.Flights[0]

	hotels, err := s.clients.SearchHotels(ctx, hotel.SearchRequest{
		CityName:     req.HotelDetails.CityName,
		NumOfRooms:   req.HotelDetails.NumOfRooms,
		CheckinDate:  req.HotelDetails.CheckinDate,
		CheckoutDate: req.HotelDetails.CheckoutDate,
	})
	if err != nil {
		return nil, err
	}
	if len(hotels.Hotels) == 0 {
		return nil, ErrNoHotels
	}
	offer := hotels.Hotels[0]

	cabReq := booking.Request{
		Scheduled:     selected.Arrival.Time,
		Airport:       pickupAirport(selected.Arrival.Airport),
		NumPassengers: req.CabDetails.NumPassengers,
		DropLocation:  fmt.Sprintf("%s, %s", offer.Name, offer.Address),
		RideType:      req.CabDetails.RideType,
		UserPrefs:     req.CabDetails.UserPrefs,
	}

	cab, err := s.clients.BookCab(ctx, cabReq)
	if err != nil {
		return nil, err
	}

	cab = s.maybeRebook(ctx, cabReq, cab, selected.Arrival.Time)

	it := &Itinerary{
		ID:     uuid.NewString(),
		User:   req.UserDetails,
		Flight: selected,
		Hotel:  offer,
		Cab:    *cab,
	}

	s.mu.Lock()
	s.latest = it
	s.mu.Unlock()

	s.logger.Info("itinerary composed",
		"id", it.ID,
		"flight", selected.FlightNumber,
		"hotel", offer.Name,
		"cab_request", cab.RequestID)
	return it, nil
}

// maybeRebook enforces the arrival-to-pickup gap. When the re-book itself
// fails the first booking stands; a tight pickup beats no pickup.
func (s *Service) maybeRebook(ctx context.Context, cabReq booking.Request, cab *booking.Result, arrivalStr string) *booking.Result {
	arrival, err := time.Parse(time.RFC3339, arrivalStr)
	if err != nil {
		return cab
	}
	pickup, err := time.Parse(time.RFC3339, cab.PickupTime)
	if err != nil {
		return cab
	}
	if !pickup.Before(arrival.Add(minPickupGap)) {
		return cab
	}

	cabReq.Scheduled = arrival.Add(rebookOffset).Format(time.RFC3339)
	rebooked, err := s.clients.BookCab(ctx, cabReq)
	if err != nil {
		s.logger.Warn("re-book failed, keeping original booking", "error", err)
		return cab
	}
	s.logger.Info("cab re-booked for later pickup", "scheduled", cabReq.Scheduled)
	return rebooked
}

// Latest returns the most recent itinerary or ErrNoItinerary.
func (s *Service) Latest() (*Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return nil, ErrNoItinerary
	}
	return s.latest, nil
}

func pickupAirport(iata string) string {
	if name, ok := airportNameByIATA[iata]; ok {
		return name
	}
	return iata
}
