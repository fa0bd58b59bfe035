// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server hosts the mailwright endpoints over plain HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pdiddy/mailwright/internal/handler"
	"github.com/pdiddy/mailwright/pkg/types"
)

const defaultShutdownTimeout = 10 * time.Second

// Routes served by NewHandler. The /.netlify/functions paths keep existing
// front ends working unchanged.
const (
	PathBrainDump       = "/api/process-brain-dump"
	PathDrafts          = "/api/generate-emails"
	PathLegacyBrainDump = "/.netlify/functions/process-brain-dump"
	PathLegacyDrafts    = "/.netlify/functions/generate-emails"
	PathHealth          = "/healthz"
	PathMetrics         = "/metrics"
)

// NewHandler builds the top-level handler: the two email endpoints, health
// and metrics, wrapped in request logging.
func NewHandler(h *handler.Handlers, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	brainDump := h.BrainDump()
	drafts := h.Drafts()
	mux.Handle(PathBrainDump, withMetrics("braindump", brainDump))
	mux.Handle(PathLegacyBrainDump, withMetrics("braindump", brainDump))
	mux.Handle(PathDrafts, withMetrics("drafts", drafts))
	mux.Handle(PathLegacyDrafts, withMetrics("drafts", drafts))

	mux.HandleFunc(PathHealth, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle(PathMetrics, promhttp.Handler())

	return RequestLogging(log, mux)
}

// Server runs the HTTP listener.
type Server struct {
	cfg types.ServerConfig
	srv *http.Server
	log *zap.Logger
}

// New returns a Server for cfg serving h.
func New(cfg types.ServerConfig, h http.Handler, log *zap.Logger) *Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.cfg.Addr))
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
