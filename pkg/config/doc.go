// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: an
// optional .env file is read into the environment, then the environment is
// parsed into a struct using `env` and `envDefault` tags. Each configuration
// type is parsed once per process and cached.
//
//	type Config struct {
//	    LogLevel  string `env:"VALIDATION_LOG_LEVEL" envDefault:"info"`
//	    Builtins  bool   `env:"VALIDATION_BUILTINS" envDefault:"true"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Tests that change the environment call ResetCache before loading again.
// Parse failures wrap ErrParsingConfig.
package config
