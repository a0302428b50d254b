// Package server exposes a dcg.Engine's operational surface over HTTP:
// health checks, Prometheus metrics, and a read-only graph dump. It
// carries no mutation endpoint — Cell/Set/Force remain in-process calls
// against the client's own *dcg.Engine, per spec.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yesoreyeram/dcgo/pkg/dcg"
	"github.com/yesoreyeram/dcgo/pkg/health"
	"github.com/yesoreyeram/dcgo/pkg/logging"
	"github.com/yesoreyeram/dcgo/pkg/telemetry"
	"github.com/yesoreyeram/dcgo/pkg/wellformed"
)

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	EnableCORS      bool
}

// DefaultConfig returns default server configuration.
func DefaultConfig() Config {
	return Config{
		Address:         ":8080",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		EnableCORS:      true,
	}
}

// Server exposes an engine's /healthz, /metrics, and /dcg endpoints.
type Server struct {
	config     Config
	httpServer *http.Server

	engine            *dcg.Engine
	healthChecker     *health.Checker
	telemetryProvider *telemetry.Provider
	logger            *logging.Logger
}

// New builds a Server fronting eng, wiring a health check named
// "dcg_well_formed" backed by wellformed.Check(eng.Store()).
func New(config Config, eng *dcg.Engine, provider *telemetry.Provider, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.New(logging.DefaultConfig())
	}

	checker := health.NewChecker("dcgo-engine", "0.1.0")
	checker.RegisterCheck("dcg_well_formed", func(ctx context.Context) error {
		return wellformed.Check(eng.Store())
	}, 5*time.Second, true)

	s := &Server{
		config:            config,
		engine:            eng,
		healthChecker:     checker,
		telemetryProvider: provider,
		logger:            logger,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpServer = &http.Server{
		Addr:         config.Address,
		Handler:      s.middlewareChain(mux),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.healthChecker.HTTPHandler())
	mux.HandleFunc("/healthz/live", s.healthChecker.LivenessHandler())
	mux.HandleFunc("/healthz/ready", s.healthChecker.ReadinessHandler())
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/dcg", s.handleDump)
}

// handleDump renders the engine's current store as JSON via
// wellformed.Dump — read-only, no side effects on the graph.
func (s *Server) handleDump(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entries := wellformed.Dump(s.engine.Store())
	s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"instance_id": s.engine.InstanceID().String(),
		"nodes":       entries,
		"counts":      s.engine.Counts(),
	})
}

func (s *Server) middlewareChain(handler http.Handler) http.Handler {
	if s.config.EnableCORS {
		handler = s.corsMiddleware(handler)
	}
	handler = s.loggingMiddleware(handler)
	handler = s.recoveryMiddleware(handler)
	return handler
}

func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

// Start blocks serving HTTP until Shutdown is called or a fatal error
// occurs.
func (s *Server) Start() error {
	s.logger.WithField("address", s.config.Address).Info("starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and its telemetry provider.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}
	if s.telemetryProvider != nil {
		if err := s.telemetryProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown telemetry: %w", err)
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		s.logger.WithFields(map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status_code": rw.statusCode,
			"duration_ms": time.Since(start).Milliseconds(),
			"remote_addr": r.RemoteAddr,
		}).Info("http request")
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.WithField("error", fmt.Sprintf("%v", err)).
					WithField("path", r.URL.Path).
					Error("panic recovered")
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
