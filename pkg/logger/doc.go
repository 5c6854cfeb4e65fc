// Package logger provides a small factory around Go's slog package together
// with attribute helpers that keep state machine log records consistent.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel sets the minimum level; ParseLevel turns "debug" or "warn" into one.
//   - WithAttr attaches static attributes to every record.
//   - WithDevelopment / WithProduction / WithEnvironment apply per-environment defaults.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "phonecall"),
//	)
//	log.Debug("state changed",
//	    logger.FromState("on_hook"),
//	    logger.ToState("off_hook"),
//	    logger.Trigger("take_off_hook"),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally. Discard returns a logger that drops everything, which is
// handy in tests and benchmarks.
package logger
