package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the Prometheus collectors the HTTP layer reports into.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	RateLimitRejected prometheus.Counter
	Evaluations       *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_advisor_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loan_advisor_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		RateLimitRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "loan_advisor_rate_limit_rejected_total",
			Help: "Requests rejected by the per-client rate limiter.",
		}),
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_advisor_strategy_evaluations_total",
			Help: "Strategy evaluations by category.",
		}, []string{"category"}),
	}
}
