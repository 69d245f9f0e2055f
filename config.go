package recordkit

import (
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/recordkit/pkg/logkit"
)

// Config holds engine defaults loadable from the environment.
type Config struct {
	// DeepErrors logs the full failure tree on validation failure.
	DeepErrors bool `env:"RECORDKIT_DEEP_ERRORS" envDefault:"false"`
	// LogEnabled turns on engine logging to stderr; off, the engine is silent.
	LogEnabled bool `env:"RECORDKIT_LOG" envDefault:"false"`
	// LogLevel is the minimum level when logging is enabled.
	LogLevel slog.Level `env:"RECORDKIT_LOG_LEVEL" envDefault:"info"`
	// LogFormat is "text" or "json".
	LogFormat string `env:"RECORDKIT_LOG_FORMAT" envDefault:"text"`
}

var defaultEnvLoaded sync.Once

// LoadConfig parses engine configuration from environment variables, loading
// a .env file first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// FromConfig builds an Engine from cfg.
func FromConfig(cfg Config) *Engine {
	logOpts := []logkit.Option{
		logkit.WithLevel(cfg.LogLevel),
	}
	if cfg.LogFormat != "" {
		logOpts = append(logOpts, logkit.WithFormat(logkit.Format(cfg.LogFormat)))
	}
	if cfg.LogEnabled {
		logOpts = append(logOpts, logkit.WithOutput(os.Stderr))
	}
	return New(
		WithLogger(logkit.New(logOpts...)),
		WithDeepErrors(cfg.DeepErrors),
	)
}
