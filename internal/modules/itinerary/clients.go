// README: HTTP clients for the flight, hotel and cab services.
package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"wayfare/internal/modules/booking"
	"wayfare/internal/modules/flight"
	"wayfare/internal/modules/hotel"
)

var ErrDownstream = errors.New("downstream service call failed")

// Clients wraps the three agent endpoints. One shared http.Client; the
// per-plan deadline comes from the request context.
type Clients struct {
	flightURL string
	hotelURL  string
	cabURL    string
	http      *http.Client
}

func NewClients(flightURL, hotelURL, cabURL string) *Clients {
	return &Clients{
		flightURL: flightURL,
		hotelURL:  hotelURL,
		cabURL:    cabURL,
		http:      &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Clients) SearchFlights(ctx context.Context, req flight.SearchRequest) (*flight.SearchResponse, error) {
	var out flight.SearchResponse
	if err := c.post(ctx, c.flightURL, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Clients) SearchHotels(ctx context.Context, req hotel.SearchRequest) (*hotel.SearchResponse, error) {
	var out hotel.SearchResponse
	if err := c.post(ctx, c.hotelURL, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Clients) BookCab(ctx context.Context, req booking.Request) (*booking.Result, error) {
	var out booking.Result
	if err := c.post(ctx, c.cabURL, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post sends JSON and decodes JSON, turning any non-2xx answer into a
// ErrDownstream carrying the body's error field when present.
func (c *Clients) post(ctx context.Context, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encoding payload: %v", ErrDownstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownstream, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading body: %v", ErrDownstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var remote struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &remote)
		msg := remote.Error
		if msg == "" {
			msg = remote.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return fmt.Errorf("%w: %s: %s", ErrDownstream, url, msg)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrDownstream, err)
	}
	return nil
}
