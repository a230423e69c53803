// Package server assembles the reference sync server: HTTP routing,
// middleware and graceful shutdown around the record storage.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aceup/plansync/internal/config"
	"github.com/aceup/plansync/internal/metrics"
	"github.com/aceup/plansync/internal/server/handlers"
	"github.com/aceup/plansync/internal/server/middleware"
	"github.com/aceup/plansync/internal/server/storage"
)

// Server is the reference sync server.
type Server struct {
	cfg        config.Server
	logger     *slog.Logger
	httpServer *http.Server
}

// New wires the handlers, middleware and metrics into an HTTP server.
func New(cfg config.Server, recordStorage storage.RecordStorage, registry *prometheus.Registry, logger *slog.Logger, version string) *Server {
	operationsHandler := handlers.NewOperationsHandler(logger, recordStorage)
	recordsHandler := handlers.NewRecordsHandler(logger, recordStorage)
	healthHandler := handlers.NewHealthHandler(logger, version)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/operations", operationsHandler.Apply)
	mux.HandleFunc("GET /api/v1/records/{dataType}", recordsHandler.List)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	var handler http.Handler = mux
	handler = middleware.Metrics(metrics.NewServer(registry))(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health", "/metrics"})(handler)
	handler = middleware.Recovery(logger)(handler)

	return &Server{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run serves until ctx is canceled, then shuts down gracefully within
// the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout.Std())
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
