// File: lixenwraith/dotenv/doc.go

// Package dotenv loads key/value pairs from a flat env file, optionally
// falling back to the process environment, and binds them into struct fields
// by reflection. It can also render an env file template from a struct.
//
// Features:
//   - key=value lines split at the first '=', values kept verbatim
//   - Optional process environment fallback for missing keys
//   - Typed accessors (Int, Int64, Bool, Float64)
//   - Struct binding with key overrides, skip directives and custom coercions
//   - Template generation with comments and default values
//   - Export to dotenv, TOML, YAML and JSON
//
// Quick Start:
//
//	type Config struct {
//	    APIKey  string        `env:"API_KEY" comment:"API key"`
//	    Timeout int           `env:"timeout" default:"30"`
//	    Retry   time.Duration `env:"RETRY_DELAY" default:"1s"`
//	    Cache   *Cache        `env:"-"`
//	}
//
//	store, err := dotenv.Load(".env", true)
//	if err != nil {
//	    log.Printf("env file unreadable: %v", err) // store is still usable
//	}
//
//	var cfg Config
//	if err := store.Bind(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
//	template, _ := dotenv.Generate(Config{})
//
// Binding:
// Only exported fields are bound. Bool, int, int64, rune, string and float64
// fields are converted natively; any other type, including named types such
// as time.Duration, is resolved through the binder's Registry. A key that is
// not set leaves its field untouched; the default tag is not a fallback and
// only appears in generated templates.
//
// Custom types:
//
//	reg := dotenv.DefaultRegistry()
//	dotenv.RegisterFunc(reg, func(raw string, all map[string]string) (Level, error) {
//	    return ParseLevel(raw)
//	})
//	err := dotenv.NewBinder(dotenv.WithRegistry(reg)).Bind(store, &cfg)
//
// Thread Safety:
// A Store is read-only after Build and may be shared. Registry methods are
// guarded by a read-write mutex.
package dotenv
