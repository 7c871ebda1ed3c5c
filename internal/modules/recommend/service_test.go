package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wayfare/internal/ai"
	"wayfare/internal/modules/estimate"
	"wayfare/internal/types"
)

type stubAdvisor struct {
	rec *ai.RideRecommendation
	err error
}

func (s *stubAdvisor) RecommendRide(context.Context, ai.RecommendationQuery) (*ai.RideRecommendation, error) {
	return s.rec, s.err
}

func testEstimates() []estimate.Estimate {
	return []estimate.Estimate{
		{RideClass: types.ClassEconomy, Low: 10, High: 12},
		{RideClass: types.ClassPremiumLarge, Low: 15, High: 18},
		{RideClass: types.ClassComfort, Low: 13, High: 15},
		{RideClass: types.ClassPremiumBlack, Low: 25, High: 30},
	}
}

func TestRecommend_AdvisorSuccess(t *testing.T) {
	svc := NewService(&stubAdvisor{rec: &ai.RideRecommendation{
		Recommendation: "premium_black",
		Reason:         "best for a business trip",
	}}, time.Second)

	got := svc.Recommend(context.Background(), ai.RecommendationQuery{Estimates: testEstimates(), Passengers: 1})
	if got.Class != types.ClassPremiumBlack {
		t.Errorf("got %s, want premium_black", got.Class)
	}
	if got.Fallback {
		t.Error("advisor answer must not be marked fallback")
	}
	if got.Reason != "best for a business trip" {
		t.Errorf("reason lost: %q", got.Reason)
	}
}

func TestRecommend_AdvisorError(t *testing.T) {
	svc := NewService(&stubAdvisor{err: errors.New("quota exceeded")}, time.Second)

	got := svc.Recommend(context.Background(), ai.RecommendationQuery{Estimates: testEstimates(), Passengers: 1})
	if !got.Fallback {
		t.Fatal("expected fallback")
	}
	if got.Class != types.ClassEconomy {
		t.Errorf("cheapest class is economy, got %s", got.Class)
	}
	if !strings.Contains(got.Reason, "due to AI error") {
		t.Errorf("rationale must name the trigger: %q", got.Reason)
	}
	if !strings.Contains(got.FallbackCause, "quota exceeded") {
		t.Errorf("cause lost: %q", got.FallbackCause)
	}
}

func TestRecommend_UnknownClassFromAdvisor(t *testing.T) {
	svc := NewService(&stubAdvisor{rec: &ai.RideRecommendation{Recommendation: "hyperloop"}}, time.Second)

	got := svc.Recommend(context.Background(), ai.RecommendationQuery{Estimates: testEstimates(), Passengers: 1})
	if !got.Fallback {
		t.Fatal("unknown class must trigger fallback")
	}
	if got.Class != types.ClassEconomy {
		t.Errorf("got %s, want economy", got.Class)
	}
}

func TestRecommend_NilAdvisor(t *testing.T) {
	svc := NewService(nil, time.Second)

	got := svc.Recommend(context.Background(), ai.RecommendationQuery{Estimates: testEstimates(), Passengers: 1})
	if !got.Fallback {
		t.Fatal("expected fallback")
	}
}

func TestFallback_LargeGroupPrefersPremiumLarge(t *testing.T) {
	svc := NewService(nil, time.Second)

	got := svc.Recommend(context.Background(), ai.RecommendationQuery{Estimates: testEstimates(), Passengers: 5})
	if got.Class != types.ClassPremiumLarge {
		t.Errorf("got %s, want premium_large for 5 passengers", got.Class)
	}
}

func TestFallback_NoEstimates(t *testing.T) {
	svc := NewService(nil, time.Second)

	got := svc.Recommend(context.Background(), ai.RecommendationQuery{Passengers: 2})
	if got.Class != types.ClassEconomy {
		t.Errorf("got %s, want economy when no estimates exist", got.Class)
	}
	if !got.Fallback {
		t.Error("expected fallback")
	}
}
