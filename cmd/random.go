package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lepinkainen/gbrandom/internal/logging"
	"github.com/lepinkainen/gbrandom/internal/render"
)

// RandomCmd prints a single random game.
type RandomCmd struct {
	Format string `short:"f" help:"Output format: json, yaml or markdown" default:"json" enum:"json,yaml,yml,markdown,md"`
}

func (r *RandomCmd) Run(app *App) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return r.run(ctx, app)
}

func (r *RandomCmd) run(ctx context.Context, app *App) error {
	format, err := render.ParseFormat(r.Format)
	if err != nil {
		return err
	}

	s, closeClient := newSampler(app)
	defer closeClient()

	game, err := s.RandomGame(logging.WithLogger(ctx, app.Logger))
	if err != nil {
		return err
	}

	return render.Write(stdout, game, format)
}
