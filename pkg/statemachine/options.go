package statemachine

import (
	"log/slog"

	"github.com/google/uuid"
)

// Option configures a Machine during construction.
type Option func(*options)

type options struct {
	id     string
	logger *slog.Logger
}

func defaultOptions() *options {
	return &options{
		id:     uuid.NewString(),
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for transition diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithID sets the identifier attached to every log record of the machine.
// Defaults to a random UUID; empty values are ignored.
func WithID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.id = id
		}
	}
}
