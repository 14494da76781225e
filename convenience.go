// File: lixenwraith/dotenv/convenience.go
package dotenv

import "fmt"

// Load reads the env file at path. envFallback enables the process
// environment as a fallback for keys the file does not define.
// On a read failure the returned store is empty but usable.
func Load(path string, envFallback bool) (*Store, error) {
	return NewBuilder().
		WithFile(path).
		WithEnvFallback(envFallback).
		Build()
}

// LoadDefault reads DefaultFile from the working directory without env fallback.
func LoadDefault() (*Store, error) {
	return Load(DefaultFile, false)
}

// MustLoad is like Load but panics on errors other than read failures.
func MustLoad(path string, envFallback bool) *Store {
	return NewBuilder().
		WithFile(path).
		WithEnvFallback(envFallback).
		MustBuild()
}

// LoadInto reads the env file at path and binds it into target using the
// default registry. Read failures are returned joined with any binding errors.
func LoadInto(path string, envFallback bool, target any) error {
	store, loadErr := Load(path, envFallback)
	if store == nil {
		return loadErr
	}
	if err := NewBinder().Bind(store, target); err != nil {
		if loadErr != nil {
			return fmt.Errorf("%w; %w", loadErr, err)
		}
		return err
	}
	return loadErr
}
