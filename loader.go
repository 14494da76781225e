// FILE: lixenwraith/dotenv/loader.go
package dotenv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultMaxLineSize bounds a single line of an env file.
const DefaultMaxLineSize = 1 << 20

// Parse reads key=value lines from r.
//
// A line without '=' is ignored. Otherwise the line is split at the first '='
// and the remainder is kept verbatim as the value, with no trimming, quoting or
// comment stripping. A later duplicate key replaces the earlier value.
func Parse(r io.Reader) (map[string]string, error) {
	return parseLines(r, DefaultMaxLineSize)
}

func parseLines(r io.Reader, maxLineSize int) (map[string]string, error) {
	values := make(map[string]string)

	initial := 64 * 1024
	if maxLineSize < initial {
		initial = maxLineSize
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initial), maxLineSize)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			// Comment or blank line
			continue
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// readFile loads the env file at path.
// A missing file yields an empty map and no error.
func readFile(path string, maxLineSize int) (map[string]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, &SourceReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &SourceReadError{Path: path, Err: fmt.Errorf("is a directory")}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &SourceReadError{Path: path, Err: err}
	}
	defer file.Close()

	values, err := parseLines(file, maxLineSize)
	if err != nil {
		return nil, &SourceReadError{Path: path, Err: err}
	}
	return values, nil
}
