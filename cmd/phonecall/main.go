package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/dmitrymomot/statekit/internal/phone"
	"github.com/dmitrymomot/statekit/pkg/config"
	"github.com/dmitrymomot/statekit/pkg/logger"
	"github.com/dmitrymomot/statekit/pkg/statemachine"
)

// Config is read from the environment (and an optional .env file).
type Config struct {
	AppEnv        string `env:"APP_ENV" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL"`
	LogFormat     string `env:"LOG_FORMAT"`
	UseDefinition bool   `env:"PHONE_USE_DEFINITION" envDefault:"false"`
}

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lg, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to configure logger: %v", err)
	}
	logger.SetAsDefault(lg)

	p, err := newPhone(cfg, lg)
	if err != nil {
		lg.Error("failed to build phone", logger.Error(err))
		os.Exit(1)
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"connect_call", p.Connect},
		{"take_off_hook", p.TakeOffHook},
		{"make_call", p.Dial},
		{"connect_call", p.Connect},
		{"mute_call", p.Mute},
		{"hang_up", p.Hangup},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			lg.Warn(step.name+" failed",
				logger.State(p.State()),
				slog.String("kind", statemachine.KindOf(err).String()),
				logger.Error(err),
			)
			continue
		}
		lg.Info(step.name, logger.State(p.State()))
	}
}

func newLogger(cfg Config) (*slog.Logger, error) {
	opts := []logger.Option{logger.WithEnvironment(cfg.AppEnv, "phonecall")}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}

	return logger.New(opts...), nil
}

func newPhone(cfg Config, lg *slog.Logger) (*phone.Phone, error) {
	if cfg.UseDefinition {
		return phone.NewFromDefinition(lg)
	}
	return phone.New(lg), nil
}
