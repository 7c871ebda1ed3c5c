// README: Recommendation result carrying either a model choice or a tagged fallback.
package recommend

import "wayfare/internal/types"

// Result is the engine's outcome. Fallback results are first-class values,
// not errors: the booking flow proceeds either way and callers surface the
// cause for observability.
type Result struct {
	Class                types.RideClass `json:"recommendation"`
	Reason               string          `json:"reason"`
	PriceAnalysis        string          `json:"price_analysis,omitempty"`
	SafetyNotes          string          `json:"safety_notes,omitempty"`
	PassengerSuitability string          `json:"passenger_suitability,omitempty"`

	// Fallback is true when the deterministic rules chose the class.
	// FallbackCause then holds the triggering error description.
	Fallback      bool   `json:"fallback,omitempty"`
	FallbackCause string `json:"error,omitempty"`
}
