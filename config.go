package adavalidate

// Config configures an Engine. Values are read from the environment by NewFromEnv.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"VALIDATION_LOG_LEVEL" envDefault:"info"`
	// LogFormat is json or text.
	LogFormat string `env:"VALIDATION_LOG_FORMAT" envDefault:"json"`
	// Builtins registers the built-in catalogue.
	Builtins bool `env:"VALIDATION_BUILTINS" envDefault:"true"`
	// ExtensionsFile is an optional YAML file of additional or overriding definitions.
	ExtensionsFile string `env:"VALIDATION_EXTENSIONS_FILE"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "json",
		Builtins:  true,
	}
}
