// README: Flight search; validation, upstream fetch, filtering, normalization.
package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrBadDate         = errors.New("invalid date format, use YYYY-MM-DD")
	ErrBadUpstreamBody = errors.New("unexpected API response structure")
)

type Service struct {
	client *Client
	cache  *Cache
}

// NewService wires the upstream client and an optional cache. cache may be
// nil.
func NewService(client *Client, cache *Cache) *Service {
	return &Service{client: client, cache: cache}
}

// SearchAll returns the upstream payload untouched.
func (s *Service) SearchAll(ctx context.Context, req SearchRequest) (*RawResponse, error) {
	source, destination, err := normalizeRoute(req)
	if err != nil {
		return nil, err
	}

	body, err := s.fetch(ctx, source, destination, "")
	if err != nil {
		return nil, err
	}
	return &RawResponse{Status: "success", Data: body}, nil
}

// Search fetches flights and applies the landed/airline/date filters, then
// normalizes each surviving entry.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	source, destination, err := normalizeRoute(req)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.UntilDate) == "" {
		return nil, fmt.Errorf("%w: source, destination, until_date", ErrMissingFields)
	}
	until, err := time.Parse("2006-01-02", strings.TrimSpace(req.UntilDate))
	if err != nil {
		return nil, ErrBadDate
	}
	airline := strings.ToLower(strings.TrimSpace(req.Airline))

	body, err := s.fetch(ctx, source, destination, airline)
	if err != nil {
		return nil, err
	}

	var payload upstreamPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadUpstreamBody, err)
	}

	flights := make([]Flight, 0, len(payload.Data))
	for _, f := range payload.Data {
		if nf, ok := normalize(f, airline, until); ok {
			flights = append(flights, nf)
		}
	}

	return &SearchResponse{Status: "success", Count: len(flights), Flights: flights}, nil
}

func (s *Service) fetch(ctx context.Context, source, destination, airline string) ([]byte, error) {
	if body, ok := s.cache.Get(ctx, source, destination, airline); ok {
		return body, nil
	}
	body, err := s.client.Fetch(ctx, source, destination, airline)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, source, destination, airline, body)
	return body, nil
}

func normalizeRoute(req SearchRequest) (string, string, error) {
	source := strings.ToUpper(strings.TrimSpace(req.Source))
	destination := strings.ToUpper(strings.TrimSpace(req.Destination))
	if source == "" || destination == "" {
		return "", "", fmt.Errorf("%w: source, destination", ErrMissingFields)
	}
	return source, destination, nil
}

// normalize applies the per-flight filters and converts the upstream entry.
// Landed flights are dropped, as are flights departing after the until date
// or not matching the requested airline substring.
func normalize(f upstreamFlight, airline string, until time.Time) (Flight, bool) {
	status := strings.ToLower(f.FlightStatus)
	if status == "landed" {
		return Flight{}, false
	}
	if airline != "" && !strings.Contains(strings.ToLower(f.Airline.Name), airline) {
		return Flight{}, false
	}

	var depTime time.Time
	if f.Departure.Scheduled != "" {
		var err error
		depTime, err = time.Parse(time.RFC3339, f.Departure.Scheduled)
		if err != nil {
			return Flight{}, false
		}
		// Calendar-date comparison in the flight's own offset.
		if depTime.Format("2006-01-02") > until.Format("2006-01-02") {
			return Flight{}, false
		}
	}

	duration := ""
	if f.Departure.Scheduled != "" && f.Arrival.Scheduled != "" {
		if arrTime, err := time.Parse(time.RFC3339, f.Arrival.Scheduled); err == nil {
			mins := int(arrTime.Sub(depTime).Minutes())
			duration = fmt.Sprintf("%dh %dm", mins/60, mins%60)
		}
	}

	return Flight{
		FlightNumber: f.Flight.IATA,
		Airline:      f.Airline.Name,
		Departure: Endpoint{
			Airport:  f.Departure.IATA,
			Time:     f.Departure.Scheduled,
			Terminal: f.Departure.Terminal,
			Gate:     f.Departure.Gate,
		},
		Arrival: Endpoint{
			Airport:  f.Arrival.IATA,
			Time:     f.Arrival.Scheduled,
			Terminal: f.Arrival.Terminal,
			Gate:     f.Arrival.Gate,
		},
		Duration: duration,
		Status:   status,
		Aircraft: f.Aircraft.IATA,
	}, true
}
