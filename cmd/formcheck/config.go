package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

type appConfig struct {
	LogLevel        string        `env:"FORMCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"FORMCHECK_LOG_FORMAT" envDefault:"text"`
	ValidateTimeout time.Duration `env:"FORMCHECK_VALIDATE_TIMEOUT" envDefault:"5s"`

	HTTP httpserver.Config
}

func loadConfig(opts ...config.Option) (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg, opts...); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("formcheck")),
	), nil
}
