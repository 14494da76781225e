// File: lixenwraith/dotenv/template.go
package dotenv

import "strings"

// Generate renders an env file template for target using the default tag name.
// See Binder.Generate.
func Generate(target any) (string, error) {
	return NewBinder(WithRegistry(NewRegistry())).Generate(target)
}

// Generate renders an env file template from the fields of target, which may
// be a struct value, a struct pointer or a reflect.Type.
//
// Every exported field is emitted in declaration order, skipped fields
// included, as "key=default" preceded by "# comment" when the field declares
// one. No values are read.
func (b *Binder) Generate(target any) (string, error) {
	fields, err := Fields(target, b.tagName)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, field := range fields {
		if field.Comment != "" {
			sb.WriteString("# ")
			sb.WriteString(field.Comment)
			sb.WriteString("\n")
		}
		sb.WriteString(field.EffectiveKey())
		sb.WriteString("=")
		sb.WriteString(field.Default)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
