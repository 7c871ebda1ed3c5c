package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"wayfare/internal/logging"
	"wayfare/internal/modules/booking"
	"wayfare/internal/modules/flight"
	"wayfare/internal/modules/hotel"
)

const arrivalTime = "2026-09-01T10:00:00Z"

// cabStub records booking requests and answers with configurable pickup
// offsets per call.
type cabStub struct {
	mu            sync.Mutex
	requests      []booking.Request
	pickupOffsets []time.Duration
}

func (s *cabStub) handler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var req booking.Request
	_ = json.NewDecoder(r.Body).Decode(&req)
	s.requests = append(s.requests, req)

	offset := s.pickupOffsets[len(s.requests)-1]
	arrival, _ := time.Parse(time.RFC3339, arrivalTime)

	_ = json.NewEncoder(w).Encode(booking.Result{
		RequestID:  "REQ-1234",
		Status:     booking.StatusAccepted,
		PickupTime: arrival.Add(offset).Format(time.RFC3339),
	})
}

func flightStubHandler(flights []flight.Flight) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(flight.SearchResponse{
			Status:  "success",
			Count:   len(flights),
			Flights: flights,
		})
	}
}

func hotelStubHandler(offers []hotel.Offer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(hotel.SearchResponse{Hotels: offers})
	}
}

func testFlights() []flight.Flight {
	return []flight.Flight{{
		FlightNumber: "UA100",
		Airline:      "United Airlines",
		Departure:    flight.Endpoint{Airport: "JFK", Time: "2026-09-01T07:00:00Z"},
		Arrival:      flight.Endpoint{Airport: "LAX", Time: arrivalTime},
		Status:       "scheduled",
	}}
}

func testOffers() []hotel.Offer {
	return []hotel.Offer{{
		Hotel: hotel.Hotel{
			Name:    "Grand Suites 9",
			Address: "1200 Main St, Los Angeles",
		},
		CheckinDate:  "2026-09-01",
		CheckoutDate: "2026-09-04",
		NumOfRooms:   1,
	}}
}

func newTestPlanner(t *testing.T, flightH, hotelH, cabH http.HandlerFunc) *Service {
	t.Helper()
	fs := httptest.NewServer(flightH)
	hs := httptest.NewServer(hotelH)
	cs := httptest.NewServer(cabH)
	t.Cleanup(fs.Close)
	t.Cleanup(hs.Close)
	t.Cleanup(cs.Close)
	return NewService(NewClients(fs.URL, hs.URL, cs.URL), logging.NewLogger("error"))
}

func planRequest() PlanRequest {
	return PlanRequest{
		UserDetails:   json.RawMessage(`{"first_name":"Ada","email":"ada@example.com"}`),
		FlightDetails: FlightDetails{Source: "JFK", Destination: "LAX", UntilDate: "2026-09-05"},
		HotelDetails:  HotelDetails{CityName: "Los Angeles", NumOfRooms: 1, CheckinDate: "2026-09-01", CheckoutDate: "2026-09-04"},
		CabDetails:    CabDetails{NumPassengers: 2},
	}
}

func TestPlan_SequencesAgents(t *testing.T) {
	cab := &cabStub{pickupOffsets: []time.Duration{25 * time.Minute}}
	svc := newTestPlanner(t, flightStubHandler(testFlights()), hotelStubHandler(testOffers()), cab.handler)

	it, err := svc.Plan(context.Background(), planRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if it.ID == "" {
		t.Error("missing itinerary id")
	}
	if it.Flight.FlightNumber != "UA100" {
		t.Errorf("wrong flight %q", it.Flight.FlightNumber)
	}
	if it.Hotel.Name != "Grand Suites 9" {
		t.Errorf("wrong hotel %q", it.Hotel.Name)
	}

	if len(cab.requests) != 1 {
		t.Fatalf("expected one cab booking, got %d", len(cab.requests))
	}
	got := cab.requests[0]
	if got.Airport != "Los Angeles International" {
		t.Errorf("IATA code not mapped to registry name: %q", got.Airport)
	}
	if got.Scheduled != arrivalTime {
		t.Errorf("cab scheduled at %q, want flight arrival", got.Scheduled)
	}
	if got.DropLocation != "Grand Suites 9, 1200 Main St, Los Angeles" {
		t.Errorf("bad drop-off %q", got.DropLocation)
	}
}

func TestPlan_RebooksTightPickup(t *testing.T) {
	cab := &cabStub{pickupOffsets: []time.Duration{5 * time.Minute, 40 * time.Minute}}
	svc := newTestPlanner(t, flightStubHandler(testFlights()), hotelStubHandler(testOffers()), cab.handler)

	it, err := svc.Plan(context.Background(), planRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cab.requests) != 2 {
		t.Fatalf("expected a re-book, got %d calls", len(cab.requests))
	}
	if cab.requests[1].Scheduled != "2026-09-01T10:20:00Z" {
		t.Errorf("re-book scheduled at %q, want arrival plus 20m", cab.requests[1].Scheduled)
	}
	if it.Cab.PickupTime != "2026-09-01T10:40:00Z" {
		t.Errorf("itinerary kept the tight pickup: %q", it.Cab.PickupTime)
	}
}

func TestPlan_NoFlights(t *testing.T) {
	cab := &cabStub{pickupOffsets: []time.Duration{25 * time.Minute}}
	svc := newTestPlanner(t, flightStubHandler(nil), hotelStubHandler(testOffers()), cab.handler)

	_, err := svc.Plan(context.Background(), planRequest())
	if !errors.Is(err, ErrNoFlights) {
		t.Errorf("expected ErrNoFlights, got %v", err)
	}
}

func TestPlan_NoHotels(t *testing.T) {
	cab := &cabStub{pickupOffsets: []time.Duration{25 * time.Minute}}
	svc := newTestPlanner(t, flightStubHandler(testFlights()), hotelStubHandler(nil), cab.handler)

	_, err := svc.Plan(context.Background(), planRequest())
	if !errors.Is(err, ErrNoHotels) {
		t.Errorf("expected ErrNoHotels, got %v", err)
	}
}

func TestLatest_Lifecycle(t *testing.T) {
	cab := &cabStub{pickupOffsets: []time.Duration{25 * time.Minute}}
	svc := newTestPlanner(t, flightStubHandler(testFlights()), hotelStubHandler(testOffers()), cab.handler)

	if _, err := svc.Latest(); !errors.Is(err, ErrNoItinerary) {
		t.Errorf("expected ErrNoItinerary before any plan, got %v", err)
	}

	planned, err := svc.Plan(context.Background(), planRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	latest, err := svc.Latest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest.ID != planned.ID {
		t.Errorf("latest id %q does not match planned %q", latest.ID, planned.ID)
	}
}

func TestPlan_MissingSections(t *testing.T) {
	cab := &cabStub{pickupOffsets: []time.Duration{25 * time.Minute}}
	svc := newTestPlanner(t, flightStubHandler(testFlights()), hotelStubHandler(testOffers()), cab.handler)

	req := planRequest()
	req.FlightDetails.Source = ""
	if _, err := svc.Plan(context.Background(), req); !errors.Is(err, ErrMissingSteps) {
		t.Errorf("expected ErrMissingSteps, got %v", err)
	}
}
