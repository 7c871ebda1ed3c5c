// README: Booking request/result wire shapes.
package booking

import (
	"wayfare/internal/modules/estimate"
	"wayfare/internal/modules/fleet"
	"wayfare/internal/modules/recommend"
	"wayfare/internal/types"
)

// Request is the inbound booking payload. Scheduled carries the flight
// arrival timestamp in RFC3339; Airport must name a registry location.
type Request struct {
	Scheduled     string `json:"scheduled"`
	Airport       string `json:"airport"`
	NumPassengers int    `json:"num_passengers"`
	DropLocation  string `json:"cab_drop_location"`
	RideType      string `json:"ride_type,omitempty"`
	UserPrefs     string `json:"user_prefs,omitempty"`
}

// Vehicle is the make/model breakdown derived from the driver's car string.
type Vehicle struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
}

// Result is the composed booking. Ephemeral: nothing is persisted across
// requests and a "booking" has no real-world side effect.
type Result struct {
	RequestID             string              `json:"request_id"`
	Status                string              `json:"status"`
	Driver                fleet.Driver        `json:"driver"`
	Vehicle               Vehicle             `json:"vehicle"`
	PickupTime            string              `json:"pickup_time"`
	EstimatedArrival      string              `json:"estimated_arrival"`
	RecommendationDetails recommend.Result    `json:"recommendation_details"`
	ChosenRideType        types.RideClass     `json:"chosen_ride_type"`
	Estimates             []estimate.Estimate `json:"estimates"`
}

const StatusAccepted = "accepted"
