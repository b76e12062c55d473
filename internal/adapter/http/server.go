package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/problem-report-intake/internal/domain"
	"github.com/couchcryptid/problem-report-intake/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReportPublisher hands an accepted report to the downstream topic.
type ReportPublisher interface {
	Publish(ctx context.Context, report domain.Report) error
}

// Deps are the collaborators behind the HTTP surface. Geocoder may be nil.
type Deps struct {
	Ready     sharedobs.ReadinessChecker
	Publisher ReportPublisher
	Geocoder  domain.Geocoder
	Metrics   *observability.Metrics
	Logger    *slog.Logger
}

// RateLimit configures the per-client token bucket on submission endpoints.
type RateLimit struct {
	PerSecond float64
	Burst     int
}

// Server exposes the taxonomy, classification and submission API alongside
// health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	limiter    *rateLimiter
	deps       Deps
	logger     *slog.Logger
}

// NewServer creates an HTTP server with all routes registered.
func NewServer(addr string, limit RateLimit, deps Deps) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		limiter: newRateLimiter(limit, 10*time.Minute, deps.Metrics, deps.Logger),
		deps:    deps,
		logger:  deps.Logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(deps.Ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /v1/taxonomy", s.handleTaxonomy)
	mux.HandleFunc("GET /v1/taxonomy/{category}/subtypes", s.handleSubtypes)
	mux.Handle("POST /v1/severity", s.limiter.wrap(http.HandlerFunc(s.handleSeverity)))
	mux.Handle("POST /v1/locations/parse", s.limiter.wrap(http.HandlerFunc(s.handleParseLocation)))
	mux.Handle("POST /v1/reports", s.limiter.wrap(http.HandlerFunc(s.handleSubmitReport)))

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	go s.limiter.sweep()
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.stop()
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
