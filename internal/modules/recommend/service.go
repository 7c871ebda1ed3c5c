// README: Recommendation engine; delegates to the AI advisor with deterministic fallback rules.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wayfare/internal/ai"
	"wayfare/internal/modules/estimate"
	"wayfare/internal/observability"
	"wayfare/internal/types"
)

var errNoAdvisor = errors.New("no AI advisor configured")

// Service is state-free: every call stands alone.
type Service struct {
	advisor ai.RideAdvisor
	timeout time.Duration
}

// NewService wraps an advisor. advisor may be nil, in which case every
// recommendation takes the fallback path.
func NewService(advisor ai.RideAdvisor, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{advisor: advisor, timeout: timeout}
}

// Recommend picks a ride class for the trip. The advisor call is bounded by
// the configured timeout; any failure, including a model answer naming a
// class outside the known set, triggers the deterministic fallback.
func (s *Service) Recommend(ctx context.Context, q ai.RecommendationQuery) Result {
	if s.advisor == nil {
		return s.fallback(q, errNoAdvisor)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rec, err := s.advisor.RecommendRide(ctx, q)
	if err != nil {
		return s.fallback(q, err)
	}

	class, err := types.ParseRideClass(rec.Recommendation)
	if err != nil {
		// Semantically unknown class is treated the same as a parse failure.
		return s.fallback(q, err)
	}

	return Result{
		Class:                class,
		Reason:               rec.Reason,
		PriceAnalysis:        rec.PriceAnalysis,
		SafetyNotes:          rec.SafetyNotes,
		PassengerSuitability: rec.PassengerSuitability,
	}
}

// fallback applies the deterministic rules: groups larger than three prefer
// premium_large when estimated, otherwise the cheapest class wins; with no
// estimates at all, economy. The rationale always names the triggering error
// so callers can surface it, never mask it.
func (s *Service) fallback(q ai.RecommendationQuery, cause error) Result {
	observability.RecommendationFallbacks.Inc()

	if len(q.Estimates) == 0 {
		return Result{
			Class:         types.ClassEconomy,
			Reason:        fmt.Sprintf("Fallback recommendation (economy, no estimates available) due to AI error: %v", cause),
			Fallback:      true,
			FallbackCause: cause.Error(),
		}
	}

	if q.Passengers > 3 {
		for _, e := range q.Estimates {
			if e.RideClass == types.ClassPremiumLarge {
				return Result{
					Class:         types.ClassPremiumLarge,
					Reason:        fmt.Sprintf("Fallback recommendation (premium_large for %d passengers) due to AI error: %v", q.Passengers, cause),
					Fallback:      true,
					FallbackCause: cause.Error(),
				}
			}
		}
	}

	cheapest := q.Estimates[0]
	for _, e := range q.Estimates[1:] {
		if e.Low < cheapest.Low {
			cheapest = e
		}
	}
	return Result{
		Class:         cheapest.RideClass,
		Reason:        fmt.Sprintf("Fallback recommendation (cheapest) due to AI error: %v", cause),
		Fallback:      true,
		FallbackCause: cause.Error(),
	}
}

// QueryFor assembles the advisor input from booking context.
func QueryFor(prefs string, estimates estimate.ByClass, origin, destination string, passengers int) ai.RecommendationQuery {
	return ai.RecommendationQuery{
		UserPrefs:   prefs,
		Estimates:   estimates.List(),
		Origin:      origin,
		Destination: destination,
		Passengers:  passengers,
	}
}
