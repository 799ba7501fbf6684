package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lepinkainen/gbrandom/internal/server"
)

// ServeCmd runs the HTTP server.
type ServeCmd struct {
	Listen string `help:"Address to listen on (default 127.0.0.1:8080)"`
}

func (s *ServeCmd) Run(app *App) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, app)
}

// serve runs the server until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, app *App) error {
	s, closeClient := newSampler(app)
	defer closeClient()

	srv := server.NewServer(app.Config.ListenAddr, s, app.Logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}
