// README: Travel plan request/itinerary shapes for the controller.
package itinerary

import (
	"encoding/json"

	"wayfare/internal/modules/booking"
	"wayfare/internal/modules/flight"
	"wayfare/internal/modules/hotel"
)

// PlanRequest is the controller's inbound payload. User details are carried
// opaquely; the controller never interprets them, only echoes them into the
// itinerary.
type PlanRequest struct {
	UserDetails   json.RawMessage `json:"userdetails"`
	FlightDetails FlightDetails   `json:"flightdetails"`
	HotelDetails  HotelDetails    `json:"hoteldetails"`
	CabDetails    CabDetails      `json:"cabdetails"`
}

type FlightDetails struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	UntilDate   string `json:"until_date"`
	Airline     string `json:"airline,omitempty"`
}

type HotelDetails struct {
	CityName     string `json:"cityname"`
	NumOfRooms   int    `json:"num_of_rooms"`
	CheckinDate  string `json:"checkin_date"`
	CheckoutDate string `json:"checkout_date"`
}

type CabDetails struct {
	NumPassengers int    `json:"num_passengers"`
	RideType      string `json:"ride_type,omitempty"`
	UserPrefs     string `json:"user_prefs,omitempty"`
}

// Itinerary is the composed plan. The first flight and first hotel offer are
// always the selected ones.
type Itinerary struct {
	ID     string          `json:"id"`
	User   json.RawMessage `json:"user"`
	Flight flight.Flight   `json:"flight"`
	Hotel  hotel.Offer     `json:"hotel"`
	Cab    booking.Result  `json:"cab"`
}
