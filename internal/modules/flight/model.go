// README: Flight search wire shapes, upstream (aviationstack) and normalized.
package flight

import "encoding/json"

// SearchRequest is the inbound payload. Source and Destination are IATA
// codes; UntilDate bounds departures for the filtered search and is ignored
// by the raw passthrough.
type SearchRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	UntilDate   string `json:"until_date,omitempty"`
	Airline     string `json:"airline,omitempty"`
}

// Endpoint is a normalized departure or arrival leg.
type Endpoint struct {
	Airport  string `json:"airport"`
	Time     string `json:"time"`
	Terminal string `json:"terminal"`
	Gate     string `json:"gate"`
}

// Flight is the normalized shape handed to callers.
type Flight struct {
	FlightNumber string   `json:"flight_number"`
	Airline      string   `json:"airline"`
	Departure    Endpoint `json:"departure"`
	Arrival      Endpoint `json:"arrival"`
	Duration     string   `json:"duration,omitempty"`
	Status       string   `json:"status"`
	Aircraft     string   `json:"aircraft"`
}

// SearchResponse is the filtered search result.
type SearchResponse struct {
	Status  string   `json:"status"`
	Count   int      `json:"count"`
	Flights []Flight `json:"flights"`
}

// RawResponse carries the upstream body untouched for the passthrough
// endpoint.
type RawResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// upstream payload, only the fields the filter reads.
type upstreamPayload struct {
	Data []upstreamFlight `json:"data"`
}

type upstreamFlight struct {
	FlightStatus string `json:"flight_status"`
	Airline      struct {
		Name string `json:"name"`
	} `json:"airline"`
	Departure upstreamLeg `json:"departure"`
	Arrival   upstreamLeg `json:"arrival"`
	Flight    struct {
		IATA string `json:"iata"`
	} `json:"flight"`
	Aircraft struct {
		IATA string `json:"iata"`
	} `json:"aircraft"`
}

type upstreamLeg struct {
	IATA      string `json:"iata"`
	Scheduled string `json:"scheduled"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
}
