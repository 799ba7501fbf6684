// Package config loads gbrandom settings from defaults, an optional YAML
// file, the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lepinkainen/gbrandom/internal/logging"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyAPIKey          = "giantbomb.apikey"
	KeyBaseURL         = "giantbomb.baseurl"
	KeyUserAgent       = "giantbomb.useragent"
	KeyListen          = "server.listen"
	KeyShutdownTimeout = "server.shutdown_timeout"
	KeyRequestTimeout  = "http.request_timeout"
	KeyLogLevel        = "log.level"
	KeyFluentEnabled   = "fluent.enabled"
	KeyFluentHost      = "fluent.host"
	KeyFluentPort      = "fluent.port"
	KeyFluentTag       = "fluent.tag"
)

// ErrMissingAPIKey is returned by Load when no Giant Bomb API key is configured.
var ErrMissingAPIKey = errors.New("giant bomb API key is not set (GB_TOKEN)")

var envBindings = map[string][]string{
	KeyAPIKey:          {"GB_TOKEN", "GIANTBOMB_API_KEY"},
	KeyBaseURL:         {"GB_BASE_URL"},
	KeyUserAgent:       {"GB_USER_AGENT"},
	KeyListen:          {"LISTEN_ADDR"},
	KeyShutdownTimeout: {"SHUTDOWN_TIMEOUT"},
	KeyRequestTimeout:  {"REQUEST_TIMEOUT"},
	KeyLogLevel:        {"LOG_LEVEL"},
	KeyFluentEnabled:   {"FLUENT_ENABLED"},
	KeyFluentHost:      {"FLUENT_HOST"},
	KeyFluentPort:      {"FLUENT_PORT"},
	KeyFluentTag:       {"FLUENT_TAG"},
}

// FluentConfig holds the optional Fluent Bit forwarding settings.
type FluentConfig struct {
	Enabled bool
	Host    string
	Port    int
	Tag     string
}

// Config is the resolved runtime configuration.
type Config struct {
	APIKey          string
	BaseURL         string
	UserAgent       string
	ListenAddr      string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	Fluent          FluentConfig
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBaseURL, "https://www.giantbomb.com/api")
	v.SetDefault(KeyUserAgent, "gbrandom/1.0")
	v.SetDefault(KeyListen, "127.0.0.1:8080")
	v.SetDefault(KeyShutdownTimeout, "10s")
	v.SetDefault(KeyRequestTimeout, "10s")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyFluentEnabled, false)
	v.SetDefault(KeyFluentHost, "127.0.0.1")
	v.SetDefault(KeyFluentPort, 24224)
	v.SetDefault(KeyFluentTag, "gbrandom")
}

// BindEnv binds each key to its environment variables.
func BindEnv(v *viper.Viper) error {
	for key, names := range envBindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}
	return nil
}

// LoadDotEnv loads variables from the given .env files. Missing files are
// skipped and variables already present in the environment win.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// ReadFile reads the YAML config file. An explicit path must exist; with an
// empty path config.yaml is looked up in the working directory and may be
// absent.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	return nil
}

// Init applies defaults and environment bindings to v.
func Init(v *viper.Viper) error {
	SetDefaults(v)
	return BindEnv(v)
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		APIKey:     strings.TrimSpace(v.GetString(KeyAPIKey)),
		BaseURL:    v.GetString(KeyBaseURL),
		UserAgent:  v.GetString(KeyUserAgent),
		ListenAddr: v.GetString(KeyListen),
		LogLevel:   v.GetString(KeyLogLevel),
		Fluent: FluentConfig{
			Enabled: v.GetBool(KeyFluentEnabled),
			Host:    v.GetString(KeyFluentHost),
			Port:    v.GetInt(KeyFluentPort),
			Tag:     v.GetString(KeyFluentTag),
		},
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var err error
	if cfg.RequestTimeout, err = duration(v, KeyRequestTimeout); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = duration(v, KeyShutdownTimeout); err != nil {
		return nil, err
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	if cfg.Fluent.Enabled {
		if cfg.Fluent.Port <= 0 || cfg.Fluent.Port > 65535 {
			return nil, fmt.Errorf("%s: invalid port %d", KeyFluentPort, cfg.Fluent.Port)
		}
		if cfg.Fluent.Tag == "" {
			return nil, fmt.Errorf("%s: tag must not be empty", KeyFluentTag)
		}
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: duration must be positive, got %s", key, raw)
	}
	return d, nil
}
