package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"loan-advisor/observability"
	"loan-advisor/repository"
	"loan-advisor/service"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	Simulation     *service.SimulationService
	Recommendation *service.RecommendationService
	Catalog        *repository.Catalog
	Limiter        *RateLimiter
	Metrics        *observability.Metrics
}

// NewRouter assembles the mux. Business routes sit behind the rate limiter
// and metrics; health and metrics endpoints are exempt from limiting.
func NewRouter(deps RouterDeps) *http.ServeMux {
	simulateHandler := NewSimulateHandler(deps.Simulation, deps.Metrics)
	recommendHandler := NewRecommendHandler(deps.Recommendation)
	templateHandler := NewTemplateHandler(deps.Catalog)

	instrumented := func(route string, h http.Handler) http.Handler {
		return MetricsMiddleware(deps.Metrics, route,
			RateLimitMiddleware(deps.Limiter, h))
	}

	mux := http.NewServeMux()
	mux.Handle("/loan/simulate",
		instrumented("/loan/simulate", http.HandlerFunc(simulateHandler.Simulate)))
	mux.Handle("/loan/recommend",
		instrumented("/loan/recommend", http.HandlerFunc(recommendHandler.Recommend)))
	mux.Handle("/templates",
		instrumented("/templates", http.HandlerFunc(templateHandler.ListTemplates)))

	mux.Handle("/metrics", promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}
