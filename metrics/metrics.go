package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal counts handled requests by route, method and status.
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "trivia_http_requests_total",
		Help: "Total number of HTTP requests handled",
	},
	[]string{"path", "method", "status"},
)

// HTTPRequestDuration records request latency by route and method.
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "trivia_http_request_duration_seconds",
		Help:    "Latency in seconds of HTTP requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

var (
	QuizDraws = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_quiz_draws_total",
			Help: "Quiz question draws by outcome (picked, exhausted)",
		},
		[]string{"result"},
	)

	CategoryCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_category_cache_lookups_total",
			Help: "Category cache lookups by outcome (hit, miss, error)",
		},
		[]string{"result"},
	)

	HubClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trivia_ws_clients",
			Help: "Number of connected websocket clients",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration)
	prometheus.MustRegister(QuizDraws, CategoryCacheLookups, HubClients)
}
