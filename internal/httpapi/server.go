// Package httpapi exposes the metocean helpers over HTTP alongside
// health and metrics endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/metocean-kit/bgs"
	"github.com/couchcryptid/metocean-kit/internal/observability"
)

// Server exposes the helper, health, and metrics HTTP endpoints.
type Server struct {
	httpServer  *http.Server
	declination bgs.Provider
	metrics     *observability.Metrics
	logger      *slog.Logger
}

// NewServer creates an HTTP server with the /v1 helper routes plus
// /healthz and /metrics.
func NewServer(addr string, declination bgs.Provider, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		declination: declination,
		metrics:     metrics,
		logger:      logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /v1/distance", s.instrument("distance", s.handleDistance))
	mux.HandleFunc("POST /v1/nearest", s.instrument("nearest", s.handleNearest))
	mux.HandleFunc("GET /v1/central-date", s.instrument("central-date", s.handleCentralDate))
	mux.HandleFunc("GET /v1/declination", s.instrument("declination", s.handleDeclination))
	mux.HandleFunc("POST /v1/polar", s.instrument("polar", s.handlePolar))
	mux.HandleFunc("POST /v1/components", s.instrument("components", s.handleComponents))
	mux.HandleFunc("POST /v1/directional-stats", s.instrument("directional-stats", s.handleDirectionalStats))

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful
// shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context
// deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// instrument counts requests per route and status code.
func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)
		s.metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(sw.status)).Inc()
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
