// Package server exposes the sampler over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server wraps the HTTP server and its router.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates the router and HTTP server listening on addr.
func NewServer(addr string, sampler GameSampler, logger *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(sampler, logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// NewRouter builds the chi router with all routes and middleware.
func NewRouter(sampler GameSampler, logger *slog.Logger) http.Handler {
	handlers := NewGameHandler(sampler)

	r := chi.NewRouter()
	r.Use(middleware.RealIP, LoggerMiddleware(logger), middleware.Recoverer)
	r.Use(middleware.Compress(5, "application/json"))

	r.Get("/_ping", Ping)
	r.Get("/game/random", handlers.RandomGame)

	return r
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start listens and serves until Stop is called. It returns nil after a
// graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", "address", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down, waiting for in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
