package flight

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const fixturePayload = `{
  "data": [
    {
      "flight_status": "active",
      "airline": {"name": "IndiGo"},
      "flight": {"iata": "6E102"},
      "aircraft": {"iata": "A20N"},
      "departure": {"iata": "HYD", "scheduled": "2026-09-01T08:00:00+00:00", "terminal": "1", "gate": "12"},
      "arrival": {"iata": "DEL", "scheduled": "2026-09-01T10:30:00+00:00", "terminal": "3", "gate": "B4"}
    },
    {
      "flight_status": "landed",
      "airline": {"name": "IndiGo"},
      "flight": {"iata": "6E101"},
      "departure": {"iata": "HYD", "scheduled": "2026-08-30T08:00:00+00:00"},
      "arrival": {"iata": "DEL", "scheduled": "2026-08-30T10:15:00+00:00"}
    },
    {
      "flight_status": "scheduled",
      "airline": {"name": "Air India"},
      "flight": {"iata": "AI540"},
      "departure": {"iata": "HYD", "scheduled": "2026-09-10T09:00:00+00:00"},
      "arrival": {"iata": "DEL", "scheduled": "2026-09-10T11:10:00+00:00"}
    }
  ]
}`

func newTestService(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(NewClient(srv.URL, "test-key", timeout), nil)
}

func fixtureHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("access_key") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(fixturePayload))
}

func TestSearch_FiltersLandedAndFutureDepartures(t *testing.T) {
	svc := newTestService(t, fixtureHandler, 5*time.Second)

	resp, err := svc.Search(context.Background(), SearchRequest{
		Source:      "hyd",
		Destination: "del",
		UntilDate:   "2026-09-05",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Landed 6E101 and late-departing AI540 are both dropped.
	if resp.Count != 1 || len(resp.Flights) != 1 {
		t.Fatalf("expected exactly one flight, got %d", resp.Count)
	}

	f := resp.Flights[0]
	if f.FlightNumber != "6E102" {
		t.Errorf("wrong flight %q", f.FlightNumber)
	}
	if f.Duration != "2h 30m" {
		t.Errorf("duration %q, want 2h 30m", f.Duration)
	}
	if f.Departure.Airport != "HYD" || f.Arrival.Airport != "DEL" {
		t.Errorf("bad route: %+v -> %+v", f.Departure, f.Arrival)
	}
	if f.Status != "active" {
		t.Errorf("status %q", f.Status)
	}
}

func TestSearch_AirlineFilter(t *testing.T) {
	svc := newTestService(t, fixtureHandler, 5*time.Second)

	resp, err := svc.Search(context.Background(), SearchRequest{
		Source:      "HYD",
		Destination: "DEL",
		UntilDate:   "2026-09-30",
		Airline:     "air india",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 1 || resp.Flights[0].Airline != "Air India" {
		t.Fatalf("airline filter failed: %+v", resp.Flights)
	}
}

func TestSearch_MissingFields(t *testing.T) {
	svc := newTestService(t, fixtureHandler, 5*time.Second)

	_, err := svc.Search(context.Background(), SearchRequest{Source: "HYD"})
	if !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}

	_, err = svc.Search(context.Background(), SearchRequest{Source: "HYD", Destination: "DEL"})
	if !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields without until_date, got %v", err)
	}
}

func TestSearch_BadDate(t *testing.T) {
	svc := newTestService(t, fixtureHandler, 5*time.Second)

	_, err := svc.Search(context.Background(), SearchRequest{
		Source:      "HYD",
		Destination: "DEL",
		UntilDate:   "01-09-2026",
	})
	if !errors.Is(err, ErrBadDate) {
		t.Errorf("expected ErrBadDate, got %v", err)
	}
}

func TestSearch_UpstreamFailure(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, 5*time.Second)

	_, err := svc.Search(context.Background(), SearchRequest{
		Source:      "HYD",
		Destination: "DEL",
		UntilDate:   "2026-09-05",
	})
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestSearch_UpstreamTimeout(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}, 50*time.Millisecond)

	_, err := svc.Search(context.Background(), SearchRequest{
		Source:      "HYD",
		Destination: "DEL",
		UntilDate:   "2026-09-05",
	})
	if !errors.Is(err, ErrUpstreamTimeout) {
		t.Errorf("expected ErrUpstreamTimeout, got %v", err)
	}
}

func TestSearchAll_Passthrough(t *testing.T) {
	svc := newTestService(t, fixtureHandler, 5*time.Second)

	resp, err := svc.SearchAll(context.Background(), SearchRequest{Source: "HYD", Destination: "DEL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status %q", resp.Status)
	}
	if string(resp.Data) != fixturePayload {
		t.Error("passthrough body was altered")
	}
}
