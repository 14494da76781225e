// FILE: lixenwraith/dotenv/errors.go
package dotenv

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is against the typed errors below.
var (
	// ErrSourceRead indicates the env file exists but could not be read.
	// It is never fatal: the store is still built, empty.
	ErrSourceRead = errors.New("env source could not be read")

	// ErrTypeCoercion indicates a raw value was missing or could not be converted.
	ErrTypeCoercion = errors.New("type coercion failed")

	// ErrUnresolvedFieldType indicates a field type has no native or registered coercion.
	ErrUnresolvedFieldType = errors.New("unresolved field type")

	// ErrImmutableField indicates a field cannot be written through the given target.
	ErrImmutableField = errors.New("field is not writable")

	// ErrKeyNotSet is the cause of a CoercionError raised for an absent key.
	ErrKeyNotSet = errors.New("key not set")

	// ErrInvalidTarget indicates Bind or Generate received something other than a struct.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrUnknownFormat indicates an unsupported export format.
	ErrUnknownFormat = errors.New("unknown export format")
)

// SourceReadError reports an I/O failure while reading an existing env file.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("failed to read env file '%s': %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }

func (e *SourceReadError) Is(target error) bool { return target == ErrSourceRead }

// CoercionError reports a raw value that could not be converted to Type.
// Value is empty and Err is ErrKeyNotSet when the key was absent.
type CoercionError struct {
	Key   string
	Value string
	Type  string
	Err   error
}

func (e *CoercionError) Error() string {
	if errors.Is(e.Err, ErrKeyNotSet) {
		return fmt.Sprintf("cannot convert key %s to %s: key not set", e.Key, e.Type)
	}
	return fmt.Sprintf("cannot convert value %q of key %s to %s: %v", e.Value, e.Key, e.Type, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

func (e *CoercionError) Is(target error) bool { return target == ErrTypeCoercion }

// UnresolvedFieldTypeError reports a field whose declared type has no coercion.
type UnresolvedFieldTypeError struct {
	Field string
	Type  string
}

func (e *UnresolvedFieldTypeError) Error() string {
	return fmt.Sprintf("cannot identify type %s of field %s: tag it with `env:\"-\"` or register a coercion for it", e.Type, e.Field)
}

func (e *UnresolvedFieldTypeError) Is(target error) bool { return target == ErrUnresolvedFieldType }

// ImmutableFieldError reports a field that cannot be set, typically because
// the target was passed by value instead of by pointer.
type ImmutableFieldError struct {
	Field string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("field %s cannot be written, pass a pointer to the struct", e.Field)
}

func (e *ImmutableFieldError) Is(target error) bool { return target == ErrImmutableField }
