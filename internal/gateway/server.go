// Package gateway exposes the same-origin proxy routes the dashboard talks
// to. Each route is a pure function of (query, configuration): required
// parameters are checked, defaults applied, the credential verified, and the
// upstream response relayed byte-for-byte or replaced with a generic error
// envelope. No route depends on another route's outcome.
package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"marketdash/internal/config"
	"marketdash/internal/upstream"
)

const notConfiguredMsg = "Yahoo Finance API key not configured"

// Server wraps the gateway HTTP server and its routes.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a configured gateway server. The upstream client is
// passed in, not looked up, so the whole server is a function of its inputs.
func NewServer(cfg *config.Config, client upstream.Invoker, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	for _, op := range operations {
		mux.HandleFunc(op.route, proxyHandler(op, cfg, client, logger))
	}

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      loggingMiddleware(logger, mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{httpServer: httpServer, logger: logger}
}

// Handler returns the route tree without the listener, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// proxyHandler builds the handler for one operation. The contract is the
// same for every route: 400 naming a missing required parameter, 500 when
// the credential is absent, 500 with a fixed operation message when the
// upstream call fails, otherwise the upstream body unchanged.
func proxyHandler(op operation, cfg *config.Config, client upstream.Invoker, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		params := make(map[string]string, len(op.required)+len(op.defaults))
		for _, p := range op.required {
			value := query.Get(p.name)
			if value == "" {
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": p.message})
				return
			}
			params[p.name] = value
		}
		for _, d := range op.defaults {
			value := query.Get(d.name)
			if value == "" {
				value = d.value
			}
			params[d.name] = value
		}

		// Checked after parameter validation but before any network call.
		if !cfg.Configured() {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": notConfiguredMsg})
			return
		}

		raw, err := client.Invoke(r.Context(), op.upstreamPath, params)
		if err != nil {
			// Logged for diagnostics, never echoed to the caller.
			logger.Error("upstream call failed",
				"operation", op.name,
				"path", op.upstreamPath,
				"error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": op.failureMsg})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(raw)
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}

func loggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
