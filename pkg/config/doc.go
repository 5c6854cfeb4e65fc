// Package config loads program configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded once, if present.
//   - Extra `.env` files can be requested per call with WithEnvFiles.
//   - Variables are parsed into any struct annotated with `env` tags.
//
// # Usage
//
//	type Config struct {
//	    AppEnv   string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithEnvFiles("./phone.env")); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap one of the sentinels below and can be checked with `errors.Is`:
//
//   - `ErrNilPointer`     – nil pointer passed to Load/MustLoad.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrParsingConfig`  – env vars could not be parsed into the struct.
package config
