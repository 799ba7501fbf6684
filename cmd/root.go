package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/gbrandom/internal/config"
	"github.com/lepinkainen/gbrandom/internal/logging"
	"github.com/spf13/viper"
)

var (
	// stdout receives command output, logWriter receives log lines.
	stdout    io.Writer = os.Stdout
	logWriter io.Writer = os.Stderr
)

// CLI represents the complete command structure for gbrandom
type CLI struct {
	Config   string `help:"Path to a YAML config file (defaults to ./config.yaml when present)" type:"path"`
	EnvFile  string `help:"Path to a .env file loaded before reading the environment" default:".env"`
	LogLevel string `help:"Log level: debug, info, warn or error"`

	Serve  ServeCmd  `cmd:"" default:"withargs" help:"Serve random games over HTTP"`
	Random RandomCmd `cmd:"" help:"Print one random game and exit"`
}

// App carries the resolved configuration and logger into command Run methods.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	closers []func() error
}

// Close releases resources opened during setup.
func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.Logger.Debug("Failed to close resource", "error", err)
		}
	}
	a.closers = nil
}

// Execute runs the Kong-based CLI
func Execute() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("gbrandom"),
		kong.Description("Serve random games from the Giant Bomb catalog."),
		kong.UsageOnError(),
	)

	app, err := setup(&cli, viper.GetViper())
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	err = ctx.Run(app)
	app.Close()
	if err != nil {
		app.Logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// setup resolves configuration from .env, the config file, the environment
// and flags, then builds the logger.
func setup(cli *CLI, v *viper.Viper) (*App, error) {
	if err := config.LoadDotEnv(cli.EnvFile); err != nil {
		return nil, err
	}
	if err := config.Init(v); err != nil {
		return nil, err
	}
	if err := config.ReadFile(v, cli.Config); err != nil {
		return nil, err
	}
	applyFlags(cli, v)

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg}
	if err := initLogging(app); err != nil {
		return nil, err
	}
	app.Logger.Debug("Configuration loaded",
		"listen", cfg.ListenAddr,
		"base_url", cfg.BaseURL,
		"fluent", cfg.Fluent.Enabled,
	)
	return app, nil
}

func applyFlags(cli *CLI, v *viper.Viper) {
	if cli.LogLevel != "" {
		v.Set(config.KeyLogLevel, cli.LogLevel)
	}
	if cli.Serve.Listen != "" {
		v.Set(config.KeyListen, cli.Serve.Listen)
	}
}

func initLogging(app *App) error {
	level, err := logging.ParseLevel(app.Config.LogLevel)
	if err != nil {
		return err
	}

	opts := logging.Options{Level: level, Writer: logWriter}
	if fc := app.Config.Fluent; fc.Enabled {
		client, err := logging.NewFluentClient(logging.FluentConfig{
			Host:      fc.Host,
			Port:      fc.Port,
			TagPrefix: fc.Tag,
		})
		if err != nil {
			return fmt.Errorf("fluent: %w", err)
		}
		opts.Fluent = client
		app.closers = append(app.closers, client.Close)
	}

	app.Logger = logging.New(opts)
	slog.SetDefault(app.Logger)
	return nil
}
