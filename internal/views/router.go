package views

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nationalarchives/catalogue-search/internal/middleware"
)

// NewRouter builds the service router: the search endpoint under
// /catalogue/search/, a health check and the Prometheus scrape
// endpoint. Metrics options are passed through so tests can supply
// their own registry.
func NewRouter(client Searcher, logger *slog.Logger, metricsOpts ...middleware.MetricsOption) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.OpenTelemetry())
	r.Use(middleware.Prometheus(metricsOpts...))

	r.Method(http.MethodGet, "/catalogue/search/", NewSearchHandler(client, logger))
	r.Get("/healthz", healthz)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
