package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the parsed value of one configuration type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]*entry)

	defaultEnvOnce sync.Once
)

// Load parses environment variables into v according to its `env` tags.
//
// The default .env file in the working directory is read on first use, if
// present. Each configuration type is parsed once; later calls for the same
// type return the cached copy, or the cached error.
//
//	type Config struct {
//		LogLevel string `env:"VALIDATION_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	})

	e := lookup(typeName[T]())
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})
	if e.err != nil {
		return e.err
	}

	*v = e.value.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. Cached configurations are not
// affected; call ResetCache to re-parse them.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration so the next Load parses again.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[string]*entry)
}

func lookup(name string) *entry {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	e, ok := cache[name]
	if !ok {
		e = &entry{}
		cache[name] = e
	}
	return e
}

// typeName returns a string identifier for T.
func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
