// FILE: lixenwraith/dotenv/field.go
package dotenv

import (
	"fmt"
	"reflect"
	"strings"
)

// Struct tags read from target fields.
const (
	DefaultTagName = "env"
	CommentTag     = "comment"
	DefaultTag     = "default"

	skipOption = "skip"
)

// Field describes one exported field of a target struct.
//
// The key tag has the form `env:"KEY"`, `env:"KEY,skip"`, `env:",skip"` or
// `env:"-"`. Comment and Default only feed template generation.
type Field struct {
	Name    string
	Type    reflect.Type
	Key     string
	Comment string
	Default string
	Skip    bool

	index int
}

// EffectiveKey is the key looked up for the field: the override if set,
// else the field name.
func (f Field) EffectiveKey() string {
	if f.Key != "" {
		return f.Key
	}
	return f.Name
}

// HasOverride reports whether the field declares its own key.
func (f Field) HasOverride() bool {
	return f.Key != ""
}

// Fields returns the descriptors of the exported fields of target in
// declaration order. target may be a struct value, a struct pointer (nil
// allowed) or a reflect.Type of either.
func Fields(target any, tagName string) ([]Field, error) {
	typ, err := structType(target)
	if err != nil {
		return nil, err
	}
	return describeFields(typ, tagName), nil
}

func structType(target any) (reflect.Type, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidTarget)
	}

	typ, ok := target.(reflect.Type)
	if !ok {
		typ = reflect.TypeOf(target)
	}
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: requires a struct or struct pointer, got %s", ErrInvalidTarget, typ)
	}
	return typ, nil
}

func describeFields(typ reflect.Type, tagName string) []Field {
	if tagName == "" {
		tagName = DefaultTagName
	}

	fields := make([]Field, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}

		field := Field{
			Name:    sf.Name,
			Type:    sf.Type,
			Comment: sf.Tag.Get(CommentTag),
			Default: sf.Tag.Get(DefaultTag),
			index:   i,
		}
		field.Key, field.Skip = parseKeyTag(sf.Tag.Get(tagName))
		fields = append(fields, field)
	}
	return fields
}

// parseKeyTag splits a key tag into its override key and skip flag
func parseKeyTag(tag string) (key string, skip bool) {
	if tag == "-" {
		return "", true
	}

	parts := strings.Split(tag, ",")
	key = parts[0]
	for _, opt := range parts[1:] {
		if strings.TrimSpace(opt) == skipOption {
			skip = true
		}
	}
	return key, skip
}
