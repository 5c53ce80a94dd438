package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tokensvc/pkg/config"
)

type sampleConfig struct {
	Secret   string        `env:"CFGTEST_SECRET,required"`
	Lifetime time.Duration `env:"CFGTEST_LIFETIME" envDefault:"30s"`
	Size     int           `env:"CFGTEST_SIZE" envDefault:"256"`
}

func TestParse(t *testing.T) {
	t.Parallel()

	var cfg sampleConfig
	require.NoError(t, config.Parse(&cfg, map[string]string{
		"CFGTEST_SECRET":   "s3cret",
		"CFGTEST_LIFETIME": "1m",
	}))
	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, time.Minute, cfg.Lifetime)
	assert.Equal(t, 256, cfg.Size)

	var missing sampleConfig
	assert.ErrorIs(t, config.Parse(&missing, nil), config.ErrParsingConfig)

	var bad sampleConfig
	assert.ErrorIs(t, config.Parse(&bad, map[string]string{
		"CFGTEST_SECRET": "x",
		"CFGTEST_SIZE":   "big",
	}), config.ErrParsingConfig)

	assert.ErrorIs(t, config.Parse[sampleConfig](nil, nil), config.ErrNilPointer)
}

// Load reads the process environment, so these tests do not run in parallel.

type loadConfig struct {
	Name string `env:"CFGTEST_LOAD_NAME,required"`
}

func TestLoad(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var cfg loadConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	t.Setenv("CFGTEST_LOAD_NAME", "first")
	require.NoError(t, config.Load(&cfg), "a failed parse must not poison the cache")
	assert.Equal(t, "first", cfg.Name)

	t.Setenv("CFGTEST_LOAD_NAME", "second")
	var again loadConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Name, "served from cache")

	config.ResetCache()
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "second", again.Name)

	assert.ErrorIs(t, config.Load[loadConfig](nil), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	type mustConfig struct {
		Value string `env:"CFGTEST_MUST_VALUE,required"`
	}

	var cfg mustConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("CFGTEST_MUST_VALUE", "ok")
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	assert.Equal(t, "ok", cfg.Value)
}
