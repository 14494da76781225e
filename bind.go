// FILE: lixenwraith/dotenv/bind.go
package dotenv

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

var (
	boolType    = reflect.TypeFor[bool]()
	intType     = reflect.TypeFor[int]()
	int64Type   = reflect.TypeFor[int64]()
	runeType    = reflect.TypeFor[rune]()
	stringType  = reflect.TypeFor[string]()
	float64Type = reflect.TypeFor[float64]()
)

// Binder populates struct fields from Values.
type Binder struct {
	registry *Registry
	tagName  string
	logger   zerolog.Logger
}

// BinderOption configures a Binder.
type BinderOption func(*Binder)

// WithRegistry sets the registry consulted for non-native field types.
func WithRegistry(r *Registry) BinderOption {
	return func(b *Binder) {
		if r != nil {
			b.registry = r
		}
	}
}

// WithTagName sets the struct tag holding key overrides and the skip option.
func WithTagName(name string) BinderOption {
	return func(b *Binder) {
		if name != "" {
			b.tagName = name
		}
	}
}

// WithBinderLogger sets the logger for per-field binding events.
func WithBinderLogger(logger zerolog.Logger) BinderOption {
	return func(b *Binder) {
		b.logger = logger
	}
}

// NewBinder creates a Binder. Without WithRegistry it uses a DefaultRegistry.
func NewBinder(opts ...BinderOption) *Binder {
	b := &Binder{
		tagName: DefaultTagName,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.registry == nil {
		b.registry = DefaultRegistry()
	}
	return b
}

// Registry returns the registry the binder consults.
func (b *Binder) Registry() *Registry {
	return b.registry
}

// Bind writes values into the exported fields of target, which should be a
// pointer to a struct.
//
// For each field the effective key is looked up. Skipped fields and fields
// whose key is unset are left untouched without error. Declared defaults are
// not applied. A field that fails to coerce or write does not stop the
// remaining fields; all failures are returned joined.
func (b *Binder) Bind(values Values, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return fmt.Errorf("%w: Bind requires a non-nil struct pointer", ErrInvalidTarget)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: Bind requires a struct pointer, got %T", ErrInvalidTarget, target)
	}

	all := values.Map()
	var errs []error

	for _, field := range describeFields(rv.Type(), b.tagName) {
		key := field.EffectiveKey()
		if field.Skip {
			b.logger.Debug().Str("field", field.Name).Msg("field skipped by tag")
			continue
		}

		raw, found := values.Lookup(key)
		if !found {
			continue
		}

		val, err := b.coerce(field, key, raw, all)
		if err != nil {
			b.logger.Warn().Err(err).Str("field", field.Name).Str("key", key).Msg("field binding failed")
			errs = append(errs, err)
			continue
		}

		fv := rv.Field(field.index)
		if !fv.CanSet() {
			err := &ImmutableFieldError{Field: field.Name}
			b.logger.Warn().Err(err).Str("field", field.Name).Msg("field binding failed")
			errs = append(errs, err)
			continue
		}
		fv.Set(val)
		b.logger.Debug().Str("field", field.Name).Str("key", key).Msg("field bound")
	}

	return errors.Join(errs...)
}

// coerce converts raw to the declared type of field: natives first in fixed
// order, then the registry by exact type
func (b *Binder) coerce(field Field, key, raw string, all map[string]string) (reflect.Value, error) {
	typeErr := func(err error) error {
		return &CoercionError{Key: key, Value: raw, Type: field.Type.String(), Err: err}
	}

	switch field.Type {
	case boolType:
		return reflect.ValueOf(parseBool(raw)), nil
	case intType:
		i, err := parseInt(raw, strconv.IntSize)
		if err != nil {
			return reflect.Value{}, typeErr(err)
		}
		return reflect.ValueOf(int(i)), nil
	case int64Type:
		i, err := parseInt(raw, 64)
		if err != nil {
			return reflect.Value{}, typeErr(err)
		}
		return reflect.ValueOf(i), nil
	case runeType:
		r, size := utf8.DecodeRuneInString(raw)
		if size == 0 {
			return reflect.Value{}, typeErr(fmt.Errorf("empty value"))
		}
		return reflect.ValueOf(r), nil
	case stringType:
		return reflect.ValueOf(raw), nil
	case float64Type:
		f, err := parseFloat(raw, 64)
		if err != nil {
			return reflect.Value{}, typeErr(err)
		}
		return reflect.ValueOf(f), nil
	}

	fn, ok := b.registry.Lookup(field.Type)
	if !ok {
		return reflect.Value{}, &UnresolvedFieldTypeError{Field: field.Name, Type: field.Type.String()}
	}

	out, err := fn(raw, all)
	if err != nil {
		return reflect.Value{}, typeErr(err)
	}

	val := reflect.ValueOf(out)
	if !val.IsValid() {
		return reflect.Zero(field.Type), nil
	}
	if !val.Type().AssignableTo(field.Type) {
		return reflect.Value{}, typeErr(fmt.Errorf("coercion returned %s", val.Type()))
	}
	return val, nil
}

// Bind populates target from values using a binder with the default registry.
func Bind(values Values, target any) error {
	return NewBinder().Bind(values, target)
}

// Bind populates target from the store using a binder with the default registry.
func (s *Store) Bind(target any, opts ...BinderOption) error {
	return NewBinder(opts...).Bind(s, target)
}
