package observability

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	InterpretationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridelink", Name: "interpretations_total", Help: "Trip interpretation requests by outcome"},
		[]string{"outcome"},
	)
	TranscriptionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: "ridelink", Name: "transcriptions_total", Help: "Voice transcription requests"},
	)
	GeocodeResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridelink", Name: "geocode_resolutions_total", Help: "Geocode lookups by resolver tier and outcome"},
		[]string{"tier"},
	)
	MatchSearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: "ridelink", Name: "match_searches_total", Help: "Trip match searches"},
	)
	MatchCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{Namespace: "ridelink", Name: "match_candidates", Help: "Candidates returned per match search", Buckets: []float64{0, 1, 2, 5, 10, 20, 50}},
	)
	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridelink", Name: "transfers_total", Help: "Payment transfers by outcome"},
		[]string{"outcome"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridelink", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ridelink",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// RegisterMetricsEndpoint exposes the Prometheus scrape endpoint
func RegisterMetricsEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
