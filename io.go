// File: lixenwraith/dotenv/io.go
package dotenv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names an export encoding
type Format string

const (
	// FormatDotenv is key=value lines, the format Parse reads
	FormatDotenv Format = "dotenv"
	// FormatTOML is a flat TOML table
	FormatTOML Format = "toml"
	// FormatYAML is a flat YAML mapping
	FormatYAML Format = "yaml"
	// FormatJSON is a flat JSON object
	FormatJSON Format = "json"
)

// ParseFormat resolves a format name, accepting common aliases
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "dotenv", "env":
		return FormatDotenv, nil
	case "toml", "tml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Encode renders values in the given format with keys in sorted order
func Encode(values map[string]string, format Format) ([]byte, error) {
	switch format {
	case FormatDotenv:
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var buf bytes.Buffer
		for _, k := range keys {
			buf.WriteString(k)
			buf.WriteByte('=')
			buf.WriteString(values[k])
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil

	case FormatTOML:
		var buf bytes.Buffer
		encoder := toml.NewEncoder(&buf)
		if err := encoder.Encode(values); err != nil {
			return nil, fmt.Errorf("failed to marshal values to TOML: %w", err)
		}
		return buf.Bytes(), nil

	case FormatYAML:
		data, err := yaml.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal values to YAML: %w", err)
		}
		return data, nil

	case FormatJSON:
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal values to JSON: %w", err)
		}
		return append(data, '\n'), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Export renders the file entries of the store in the given format
func (s *Store) Export(format Format) ([]byte, error) {
	return Encode(s.values, format)
}

// WriteFile writes data to path atomically through a temporary file in the
// same directory. A generated template or an export is written this way.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in '%s': %w", dir, err)
	}

	tempPath := tempFile.Name()
	removed := false
	defer func() {
		if !removed {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file '%s': %w", tempPath, err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file '%s' to '%s': %w", tempPath, path, err)
	}
	removed = true

	return nil
}
