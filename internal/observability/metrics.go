package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "wayfare", Name: "bookings_total", Help: "Cab bookings by outcome"},
		[]string{"outcome"},
	)
	RecommendationFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: "wayfare", Name: "recommendation_fallbacks_total", Help: "AI recommendation calls that fell back to deterministic rules"},
	)
	FlightCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "wayfare", Name: "flight_cache_requests_total", Help: "Flight cache lookups by result"},
		[]string{"result"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "wayfare", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"service", "method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wayfare",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
)
