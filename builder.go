// File: lixenwraith/dotenv/builder.go
package dotenv

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Builder provides a fluent interface for building a Store
type Builder struct {
	file        string
	reader      io.Reader
	envFallback bool
	maxLineSize int
	args        []string
	logger      zerolog.Logger
	err         error
}

// NewBuilder creates a new store builder reading DefaultFile
func NewBuilder() *Builder {
	return &Builder{
		file:        DefaultFile,
		maxLineSize: DefaultMaxLineSize,
		args:        os.Args[1:],
		logger:      zerolog.Nop(),
	}
}

// WithFile sets the env file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithReader reads entries from r instead of a file
func (b *Builder) WithReader(r io.Reader) *Builder {
	if r == nil {
		b.err = errors.Join(b.err, fmt.Errorf("reader cannot be nil"))
		return b
	}
	b.reader = r
	return b
}

// WithEnvFallback enables lookup in the process environment for keys the file lacks
func (b *Builder) WithEnvFallback(enabled bool) *Builder {
	b.envFallback = enabled
	return b
}

// WithMaxLineSize sets the longest line accepted from the source
func (b *Builder) WithMaxLineSize(size int) *Builder {
	if size <= 0 {
		b.err = errors.Join(b.err, fmt.Errorf("max line size must be positive, got %d", size))
		return b
	}
	b.maxLineSize = size
	return b
}

// WithArgs sets the command-line arguments consulted by WithFileDiscovery
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithLogger sets the logger used while loading
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build creates the Store.
//
// A read failure on an existing source is not fatal: the returned store is
// empty and usable, and the error matches ErrSourceRead.
// Invalid builder options are returned with a nil store.
func (b *Builder) Build() (*Store, error) {
	if b.err != nil {
		return nil, b.err
	}

	store := &Store{
		envFallback: b.envFallback,
	}

	var (
		values map[string]string
		err    error
	)
	if b.reader != nil {
		values, err = parseLines(b.reader, b.maxLineSize)
		if err != nil {
			err = &SourceReadError{Path: "<reader>", Err: err}
		}
	} else {
		store.path = b.file
		values, err = b.loadFile()
	}

	if err != nil {
		b.logger.Warn().Err(err).Str("path", store.path).Msg("env source unreadable, starting empty")
		store.values = make(map[string]string)
		return store, err
	}

	store.values = values
	return store, nil
}

func (b *Builder) loadFile() (map[string]string, error) {
	if b.file == "" {
		b.logger.Debug().Msg("no env file configured")
		return map[string]string{}, nil
	}

	if _, statErr := os.Stat(b.file); errors.Is(statErr, os.ErrNotExist) {
		b.logger.Debug().Str("path", b.file).Msg("env file not found")
		return map[string]string{}, nil
	}

	values, err := readFile(b.file, b.maxLineSize)
	if err != nil {
		return nil, err
	}

	b.logger.Debug().Str("path", b.file).Int("entries", len(values)).Msg("loaded env file")
	return values, nil
}

// MustBuild is like Build but panics on invalid options.
// Read failures never panic; the application proceeds with an empty store.
func (b *Builder) MustBuild() *Store {
	store, err := b.Build()
	if err != nil && !errors.Is(err, ErrSourceRead) {
		panic(fmt.Sprintf("dotenv build failed: %v", err))
	}
	return store
}
