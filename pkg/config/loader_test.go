package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/config"
)

type defaultsConfig struct {
	Level  string `env:"TEST_LEVEL_DEFAULT" envDefault:"info"`
	Limit  int    `env:"TEST_LIMIT_DEFAULT" envDefault:"42"`
	Enable bool   `env:"TEST_ENABLE_DEFAULT" envDefault:"true"`
}

type overrideConfig struct {
	Level string `env:"TEST_LEVEL_OVERRIDE" envDefault:"info"`
}

type cachedConfig struct {
	Value string `env:"TEST_VALUE_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"TEST_VALUE_REQUIRED,required"`
}

type envFileConfig struct {
	Value string   `env:"TEST_ENVFILE_VALUE"`
	List  []string `env:"TEST_ENVFILE_LIST" envSeparator:","`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, defaultsConfig{Level: "info", Limit: 42, Enable: true}, cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_LEVEL_OVERRIDE", "debug")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "debug", cfg.Level)
}

func TestLoad_CachedPerType(t *testing.T) {
	config.ResetCache()

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("TEST_VALUE_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.ResetCache()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()

	err := config.Load[requiredConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)

	var cfg requiredConfig
	err = config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	// The failure is cached until the cache is reset.
	t.Setenv("TEST_VALUE_REQUIRED", "present")
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	config.ResetCache()
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "present", cfg.Value)
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("TEST_VALUE_REQUIRED")

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("TEST_ENVFILE_VALUE")
		os.Unsetenv("TEST_ENVFILE_LIST")
	})
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/test.env"))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
}
