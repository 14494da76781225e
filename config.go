// FILE: lixenwraith/dotenv/config.go
package dotenv

import (
	"os"
	"sort"
)

// DefaultFile is the env file read by LoadDefault.
const DefaultFile = ".env"

// Values is the lookup surface the binding engine consumes.
// Lookup reports whether key has a value; Map returns every stored entry.
type Values interface {
	Lookup(key string) (string, bool)
	Map() map[string]string
}

// Store holds the key/value pairs read from an env file, optionally falling
// back to the process environment for keys the file does not define.
// A Store is immutable once built and safe for concurrent reads.
type Store struct {
	values      map[string]string
	envFallback bool
	path        string
}

// FromMap creates a Store over a copy of values.
func FromMap(values map[string]string, envFallback bool) *Store {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Store{
		values:      copied,
		envFallback: envFallback,
	}
}

// Get returns the value for key. With env fallback enabled, a key missing from
// the file is looked up in the process environment.
func (s *Store) Get(key string) (string, bool) {
	if val, ok := s.values[key]; ok {
		return val, true
	}
	if s.envFallback {
		return os.LookupEnv(key)
	}
	return "", false
}

// Lookup is Get; it satisfies Values.
func (s *Store) Lookup(key string) (string, bool) {
	return s.Get(key)
}

// IsUnset reports whether Get would find no value for key.
func (s *Store) IsUnset(key string) bool {
	_, ok := s.Get(key)
	return !ok
}

// Map returns a copy of the entries read from the file.
// Environment variables are never included, even with fallback enabled.
func (s *Store) Map() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Keys returns the file keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of file entries.
func (s *Store) Len() int {
	return len(s.values)
}

// Path returns the file the store was read from, empty if none.
func (s *Store) Path() string {
	return s.path
}

// EnvFallback reports whether lookups fall back to the process environment.
func (s *Store) EnvFallback() bool {
	return s.envFallback
}
