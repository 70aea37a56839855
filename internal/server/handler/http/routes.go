package http

import (
	"net/http"

	"github.com/atinyakov/pwncheck/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter constructs and returns an HTTP handler that serves
// the pwncheck API.
//
// Routes:
//
//	POST /api/check           → checkHandler.Check
//	GET  /api/stats           → checkHandler.Stats
//	GET  /api/range/{prefix}  → rangeHandler.Range
//	GET  /metrics             → Prometheus exposition
//
// Middleware chain (applied in order):
//  1. RequestID
//  2. Recoverer
//  3. AllowContentType("application/json"): rejects non-JSON bodies
//  4. WithRequestLogging(logger)
func NewRouter(
	checkHandler *CheckHandler,
	rangeHandler *RangeHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)

	// Only allow request bodies with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/check", checkHandler.Check)
		r.Get("/stats", checkHandler.Stats)
		r.Get("/range/{prefix}", rangeHandler.Range)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
