// Package api provides a small HTTP API around the expression
// evaluator.
package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

// Server is the HTTP API server.
type Server struct {
	host      string
	port      int
	precision int
	logger    *slog.Logger
}

// Config holds configuration for the API server.
type Config struct {
	Host      string
	Port      int
	Precision int
	Logger    *slog.Logger
}

// NewServer creates a new API server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		host:      cfg.Host,
		port:      cfg.Port,
		precision: cfg.Precision,
		logger:    logger,
	}
}

// Router builds the HTTP routes. Exposed separately from Serve so
// tests can drive the handlers through httptest.
func (s *Server) Router() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
	)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/eval", s.handleEval)
	})

	return r
}

// Serve starts the API server and blocks until the context is
// cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := net.JoinHostPort(s.host, fmt.Sprintf("%d", s.port))
	s.logger.Info("starting API server", "addr", fmt.Sprintf("http://%s", addr))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
