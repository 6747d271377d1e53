package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/redbank/bankmcp/internal/adapter/http/handler"
	"github.com/redbank/bankmcp/internal/adapter/http/middleware"
	"github.com/redbank/bankmcp/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	MCPHandler    http.Handler
	HealthHandler *handler.HealthHandler
	Logger        zerolog.Logger
	Metrics       *metrics.Metrics
}

// NewRouter creates a new HTTP router. The protocol endpoint lives at /mcp;
// everything else is operational surface.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)

	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// MCP streamable HTTP transport (GET, POST, DELETE on one endpoint)
	r.Handle("/mcp", cfg.MCPHandler)

	return r
}
