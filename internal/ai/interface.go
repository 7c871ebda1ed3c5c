package ai

import (
	"context"
)

// RideAdvisor defines the contract for AI-backed ride recommendations.
// This interface allows swapping providers (Gemini, OpenAI, etc.) and makes
// the deterministic fallback path testable with stubs.
type RideAdvisor interface {
	// RecommendRide analyzes the trip and estimate set and returns a
	// structured recommendation. Any error, including timeouts and
	// malformed model output, must be converted to the deterministic
	// fallback by the caller.
	RecommendRide(ctx context.Context, q RecommendationQuery) (*RideRecommendation, error)
}
