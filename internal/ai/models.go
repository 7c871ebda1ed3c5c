package ai

import "wayfare/internal/modules/estimate"

// RecommendationQuery is the input handed to the advisor.
type RecommendationQuery struct {
	// UserPrefs is free-text preference notes, possibly annotated by the
	// orchestrator (e.g. when a preferred class had no drivers).
	UserPrefs string

	// Estimates is the full per-class estimate set for the trip.
	Estimates []estimate.Estimate

	// Origin is the pickup airport name; Destination the drop-off display name.
	Origin      string
	Destination string

	Passengers int
}

// RideRecommendation captures the structured output from the model.
type RideRecommendation struct {
	// Recommendation is the chosen ride class as a wire string. It may name
	// a class outside the known set; callers must validate it.
	Recommendation string `json:"recommendation"`

	// Reason is the model's free-text explanation for the choice.
	Reason string `json:"reason"`

	PriceAnalysis        string `json:"price_analysis,omitempty"`
	SafetyNotes          string `json:"safety_notes,omitempty"`
	PassengerSuitability string `json:"passenger_suitability,omitempty"`
}
