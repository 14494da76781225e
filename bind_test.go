// FILE: lixenwraith/dotenv/bind_test.go
package dotenv_test

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dotenv"
)

func TestBindNativeTypes(t *testing.T) {
	type Config struct {
		Name    string  `env:"NAME"`
		Port    int     `env:"PORT"`
		Offset  int64   `env:"OFFSET"`
		Enabled bool    `env:"ENABLED"`
		Verbose bool    `env:"VERBOSE"`
		Grade   rune    `env:"GRADE"`
		Ratio   float64 `env:"RATIO"`
	}

	store := dotenv.FromMap(map[string]string{
		"NAME":    "svc=primary",
		"PORT":    "8080",
		"OFFSET":  "-9000000000",
		"ENABLED": "TRUE",
		"VERBOSE": "nope",
		"GRADE":   "xyz",
		"RATIO":   "1e-3",
	}, false)

	var cfg Config
	require.NoError(t, store.Bind(&cfg))

	assert.Equal(t, Config{
		Name:    "svc=primary",
		Port:    8080,
		Offset:  -9000000000,
		Enabled: true,
		Verbose: false,
		Grade:   'x',
		Ratio:   0.001,
	}, cfg)
}

func TestBindKeys(t *testing.T) {
	type Config struct {
		APIKey  string `env:"API_KEY"`
		Timeout int
		hidden  string
	}

	t.Run("OverrideAndFieldName", func(t *testing.T) {
		store := dotenv.FromMap(map[string]string{"API_KEY": "k", "Timeout": "30", "hidden": "x"}, false)

		var cfg Config
		require.NoError(t, dotenv.Bind(store, &cfg))
		assert.Equal(t, "k", cfg.APIKey)
		assert.Equal(t, 30, cfg.Timeout)
		assert.Empty(t, cfg.hidden)
	})

	t.Run("OverrideHidesFieldName", func(t *testing.T) {
		store := dotenv.FromMap(map[string]string{"APIKey": "wrong"}, false)

		var cfg Config
		require.NoError(t, dotenv.Bind(store, &cfg))
		assert.Empty(t, cfg.APIKey)
	})

	t.Run("KeysAreCaseSensitive", func(t *testing.T) {
		store := dotenv.FromMap(map[string]string{"timeout": "30"}, false)

		var cfg Config
		require.NoError(t, dotenv.Bind(store, &cfg))
		assert.Zero(t, cfg.Timeout)
	})
}

func TestBindLeavesFieldsUntouched(t *testing.T) {
	type Config struct {
		Host   string `env:"HOST" default:"localhost"`
		Cache  string `env:"-"`
		Commit string `env:"COMMIT,skip"`
		Region string `env:",skip"`
		// Unresolvable types are fine while their key is unset
		Hook chan int `env:"HOOK"`
	}

	store := dotenv.FromMap(map[string]string{
		"Cache":  "from-file",
		"COMMIT": "from-file",
		"Region": "from-file",
	}, false)

	cfg := Config{Host: "preset", Cache: "c", Commit: "abc", Region: "eu"}
	require.NoError(t, store.Bind(&cfg))

	assert.Equal(t, "preset", cfg.Host, "declared default is not applied")
	assert.Equal(t, "c", cfg.Cache)
	assert.Equal(t, "abc", cfg.Commit)
	assert.Equal(t, "eu", cfg.Region)
	assert.Nil(t, cfg.Hook)
}

func TestBindEnvFallback(t *testing.T) {
	t.Setenv("DOTENV_BIND_PORT", "7000")

	type Config struct {
		Port int `env:"DOTENV_BIND_PORT"`
	}

	var cfg Config
	require.NoError(t, dotenv.FromMap(nil, true).Bind(&cfg))
	assert.Equal(t, 7000, cfg.Port)

	cfg = Config{}
	require.NoError(t, dotenv.FromMap(nil, false).Bind(&cfg))
	assert.Zero(t, cfg.Port)
}

func TestBindErrors(t *testing.T) {
	t.Run("StrictNumbers", func(t *testing.T) {
		tests := []struct {
			name   string
			target any
			raw    string
		}{
			{"IntText", &struct{ V int }{}, "ten"},
			{"IntDecimal", &struct{ V int }{}, "1.5"},
			{"IntSpaces", &struct{ V int }{}, " 1"},
			{"Int64Overflow", &struct{ V int64 }{}, "9223372036854775808"},
			{"FloatText", &struct{ V float64 }{}, "abc"},
			{"EmptyRune", &struct{ V rune }{}, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := dotenv.Bind(dotenv.FromMap(map[string]string{"V": tt.raw}, false), tt.target)
				require.Error(t, err)

				var coercionErr *dotenv.CoercionError
				require.True(t, errors.As(err, &coercionErr))
				assert.Equal(t, "V", coercionErr.Key)
				assert.Equal(t, tt.raw, coercionErr.Value)
			})
		}
	})

	t.Run("UnresolvedFieldType", func(t *testing.T) {
		type Config struct {
			Hook chan int `env:"HOOK"`
		}

		var cfg Config
		err := dotenv.Bind(dotenv.FromMap(map[string]string{"HOOK": "x"}, false), &cfg)
		assert.ErrorIs(t, err, dotenv.ErrUnresolvedFieldType)

		var unresolved *dotenv.UnresolvedFieldTypeError
		require.True(t, errors.As(err, &unresolved))
		assert.Equal(t, "Hook", unresolved.Field)
		assert.Contains(t, err.Error(), "Hook")
		assert.Contains(t, err.Error(), "chan int")
	})

	t.Run("ContinuesAfterFailure", func(t *testing.T) {
		type Config struct {
			A int    `env:"A"`
			B string `env:"B"`
			C int    `env:"C"`
			D bool   `env:"D"`
		}

		store := dotenv.FromMap(map[string]string{"A": "x", "B": "ok", "C": "y", "D": "true"}, false)

		var cfg Config
		err := store.Bind(&cfg)
		require.Error(t, err)

		assert.Equal(t, "ok", cfg.B)
		assert.True(t, cfg.D)
		assert.Contains(t, err.Error(), "key A")
		assert.Contains(t, err.Error(), "key C")
	})

	t.Run("ValueTarget", func(t *testing.T) {
		type Config struct {
			Name string `env:"NAME"`
			Port int    `env:"PORT"`
		}

		store := dotenv.FromMap(map[string]string{"NAME": "x"}, false)
		err := store.Bind(Config{})
		assert.ErrorIs(t, err, dotenv.ErrImmutableField)

		var immutable *dotenv.ImmutableFieldError
		require.True(t, errors.As(err, &immutable))
		assert.Equal(t, "Name", immutable.Field)
	})

	t.Run("InvalidTarget", func(t *testing.T) {
		store := dotenv.FromMap(nil, false)
		n := 1

		assert.ErrorIs(t, store.Bind(nil), dotenv.ErrInvalidTarget)
		assert.ErrorIs(t, store.Bind((*struct{ A int })(nil)), dotenv.ErrInvalidTarget)
		assert.ErrorIs(t, store.Bind(&n), dotenv.ErrInvalidTarget)
		assert.ErrorIs(t, store.Bind("text"), dotenv.ErrInvalidTarget)
	})
}

type level int

func TestBindCustomRegistry(t *testing.T) {
	type Config struct {
		Level   level         `env:"LEVEL"`
		Timeout time.Duration `env:"TIMEOUT"`
	}

	t.Run("RegisteredType", func(t *testing.T) {
		registry := dotenv.NewRegistry()
		require.NoError(t, dotenv.RegisterFunc(registry, func(raw string, _ map[string]string) (level, error) {
			return level(len(raw)), nil
		}))

		var cfg Config
		store := dotenv.FromMap(map[string]string{"LEVEL": "high"}, false)
		require.NoError(t, store.Bind(&cfg, dotenv.WithRegistry(registry)))
		assert.Equal(t, level(4), cfg.Level)
	})

	t.Run("EmptyRegistryLeavesNamedTypesUnresolved", func(t *testing.T) {
		var cfg Config
		store := dotenv.FromMap(map[string]string{"TIMEOUT": "1s"}, false)
		err := store.Bind(&cfg, dotenv.WithRegistry(dotenv.NewRegistry()))
		assert.ErrorIs(t, err, dotenv.ErrUnresolvedFieldType)
	})

	t.Run("CoercionSeesAllEntries", func(t *testing.T) {
		registry := dotenv.NewRegistry()
		require.NoError(t, dotenv.RegisterFunc(registry, func(raw string, all map[string]string) (level, error) {
			if all["LEVEL_BOOST"] == "true" {
				return 10, nil
			}
			return 1, nil
		}))

		var cfg Config
		store := dotenv.FromMap(map[string]string{"LEVEL": "any", "LEVEL_BOOST": "true"}, false)
		require.NoError(t, store.Bind(&cfg, dotenv.WithRegistry(registry)))
		assert.Equal(t, level(10), cfg.Level)
	})

	t.Run("CoercionFailure", func(t *testing.T) {
		registry := dotenv.NewRegistry()
		require.NoError(t, dotenv.RegisterFunc(registry, func(raw string, _ map[string]string) (level, error) {
			return 0, fmt.Errorf("unknown level %q", raw)
		}))

		var cfg Config
		err := dotenv.NewBinder(dotenv.WithRegistry(registry)).
			Bind(dotenv.FromMap(map[string]string{"LEVEL": "max"}, false), &cfg)
		assert.ErrorIs(t, err, dotenv.ErrTypeCoercion)
		assert.Contains(t, err.Error(), "unknown level")
	})

	t.Run("WrongResultType", func(t *testing.T) {
		registry := dotenv.NewRegistry()
		require.NoError(t, registry.Register(reflect.TypeFor[level](), func(string, map[string]string) (any, error) {
			return "not a level", nil
		}))

		var cfg Config
		err := dotenv.NewBinder(dotenv.WithRegistry(registry)).
			Bind(dotenv.FromMap(map[string]string{"LEVEL": "x"}, false), &cfg)
		assert.ErrorIs(t, err, dotenv.ErrTypeCoercion)
	})

	t.Run("NilResultIsZero", func(t *testing.T) {
		registry := dotenv.NewRegistry()
		require.NoError(t, registry.Register(reflect.TypeFor[level](), func(string, map[string]string) (any, error) {
			return nil, nil
		}))

		cfg := Config{Level: 3}
		err := dotenv.NewBinder(dotenv.WithRegistry(registry)).
			Bind(dotenv.FromMap(map[string]string{"LEVEL": "x"}, false), &cfg)
		require.NoError(t, err)
		assert.Zero(t, cfg.Level)
	})
}

func TestBinderOptions(t *testing.T) {
	t.Run("TagName", func(t *testing.T) {
		type Config struct {
			Host string `cfg:"SERVICE_HOST" env:"IGNORED"`
		}

		var cfg Config
		binder := dotenv.NewBinder(dotenv.WithTagName("cfg"))
		require.NoError(t, binder.Bind(dotenv.FromMap(map[string]string{"SERVICE_HOST": "h"}, false), &cfg))
		assert.Equal(t, "h", cfg.Host)
	})

	t.Run("DefaultRegistry", func(t *testing.T) {
		_, ok := dotenv.NewBinder().Registry().Lookup(reflect.TypeFor[time.Duration]())
		assert.True(t, ok)
	})

	t.Run("Logger", func(t *testing.T) {
		type Config struct {
			Port int    `env:"PORT"`
			Skip string `env:"-"`
		}

		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

		var cfg Config
		err := dotenv.NewBinder(dotenv.WithBinderLogger(logger)).
			Bind(dotenv.FromMap(map[string]string{"PORT": "x"}, false), &cfg)
		require.Error(t, err)

		out := buf.String()
		assert.Contains(t, out, "field binding failed")
		assert.Contains(t, out, "field skipped by tag")
		assert.Equal(t, 2, strings.Count(out, "\n"))
	})
}
