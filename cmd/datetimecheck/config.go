package main

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/datetimecheck/pkg/config"
	"github.com/dmitrymomot/datetimecheck/pkg/httpapi"
	"github.com/dmitrymomot/datetimecheck/pkg/logger"
)

type appConfig struct {
	Env       config.Environment `env:"APP_ENV" envDefault:"development"`
	Service   string             `env:"APP_SERVICE" envDefault:"datetimecheck"`
	LogLevel  string             `env:"LOG_LEVEL"`
	LogFormat string             `env:"LOG_FORMAT"`
	HTTP      httpapi.Config
}

func (c appConfig) Validate() error {
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	switch logger.Format(c.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", logger.FormatJSON, logger.FormatText, c.LogFormat)
	}
	return nil
}

// newLogger applies environment defaults first so LOG_LEVEL and LOG_FORMAT override them.
func newLogger(cfg appConfig, opts ...logger.Option) *slog.Logger {
	base := []logger.Option{logger.WithEnvironment(cfg.Env.String(), cfg.Service)}
	if cfg.LogLevel != "" {
		level, _ := logger.ParseLevel(cfg.LogLevel)
		base = append(base, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		base = append(base, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(append(base, opts...)...)
}
