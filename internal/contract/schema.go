package contract

import (
	"fmt"
	"unicode/utf8"
)

// Schema is the canonical validator for one entity kind. Schemas are built
// once at process start and never mutated afterwards, so they are safe to
// share across any number of concurrent readers.
type Schema struct {
	Kind   string
	Fields []Field
}

// FieldNames returns the declared field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Field returns the declaration for the named field.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Parse validates an untyped input (e.g. a JSON-decoded document) against the
// schema. On success it returns a normalized document containing only declared
// fields, with dates coerced to time.Time and integers to int64. On failure it
// returns a *ValidationError enumerating every violated field; it never stops
// at the first violation and never partially applies defaults on failure.
//
// Fields absent from the input are filled from their declared default, if any.
// Unknown input fields are ignored.
func (s *Schema) Parse(input any) (map[string]any, error) {
	doc, ok := input.(map[string]any)
	if !ok {
		return nil, &ValidationError{
			Kind: s.Kind,
			Errors: []FieldError{{
				Path:    "(root)",
				Code:    CodeShape,
				Message: fmt.Sprintf("expected an object, got %T", input),
			}},
		}
	}

	ve := &ValidationError{Kind: s.Kind}
	out := make(map[string]any, len(s.Fields))

	for _, f := range s.Fields {
		raw, present := doc[f.Name]
		if !present || raw == nil {
			if f.Default != nil {
				out[f.Name] = f.Default
			} else if f.Required {
				ve.add(f.Name, CodeRequired, "required field is missing", nil)
			}
			continue
		}

		value, ok := parseValue(f, f.Name, raw, ve)
		if ok {
			out[f.Name] = value
		}
	}

	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return out, nil
}

// parseValue validates a single present value against its field declaration,
// recording violations under path. It returns the normalized value and whether
// it was accepted.
func parseValue(f Field, path string, raw any, ve *ValidationError) (any, bool) {
	switch f.Type {
	case TypeString, TypeEmail, TypeURL, TypeUUID:
		return parseString(f, path, raw, ve)
	case TypeInt, TypeCents:
		return parseInt(f, path, raw, ve)
	case TypeBool:
		b, ok := raw.(bool)
		if !ok {
			ve.add(path, CodeType, fmt.Sprintf("expected a boolean, got %T", raw), raw)
			return nil, false
		}
		return b, true
	case TypeDate:
		t, err := coerceDate(raw)
		if err != nil {
			ve.add(path, CodeFormat, err.Error(), raw)
			return nil, false
		}
		return t, true
	case TypeObject:
		return parseObject(f, path, raw, ve)
	case TypeArray:
		return parseArray(f, path, raw, ve)
	default:
		ve.add(path, CodeType, fmt.Sprintf("unsupported field type %q", f.Type), raw)
		return nil, false
	}
}

func parseString(f Field, path string, raw any, ve *ValidationError) (any, bool) {
	str, ok := raw.(string)
	if !ok {
		ve.add(path, CodeType, fmt.Sprintf("expected a string, got %T", raw), raw)
		return nil, false
	}

	switch f.Type {
	case TypeEmail:
		if !validEmail(str) {
			ve.add(path, CodeFormat, fmt.Sprintf("invalid email address: %q", str), str)
			return nil, false
		}
	case TypeURL:
		if !validURL(str) {
			ve.add(path, CodeFormat, fmt.Sprintf("invalid URL: %q", str), str)
			return nil, false
		}
	case TypeUUID:
		if !validUUID(str) {
			ve.add(path, CodeFormat, fmt.Sprintf("invalid UUID: %q", str), str)
			return nil, false
		}
	}

	valid := true
	length := utf8.RuneCountInString(str)
	if f.MinLen > 0 && length < f.MinLen {
		ve.add(path, CodeConstraint,
			fmt.Sprintf("must be at least %d characters, got %d", f.MinLen, length), str)
		valid = false
	}
	if f.MaxLen > 0 && length > f.MaxLen {
		ve.add(path, CodeConstraint,
			fmt.Sprintf("must be at most %d characters, got %d", f.MaxLen, length), str)
		valid = false
	}
	if f.Pattern != nil && !f.Pattern.MatchString(str) {
		ve.add(path, CodeConstraint,
			fmt.Sprintf("must match pattern %s", f.Pattern.String()), str)
		valid = false
	}
	if len(f.Enum) > 0 && !containsString(f.Enum, str) {
		ve.add(path, CodeConstraint,
			fmt.Sprintf("must be one of %v", f.Enum), str)
		valid = false
	}
	return str, valid
}

func parseInt(f Field, path string, raw any, ve *ValidationError) (any, bool) {
	n, err := coerceInt(raw)
	if err != nil {
		ve.add(path, CodeType, err.Error(), raw)
		return nil, false
	}

	valid := true
	if f.Min != nil && n < *f.Min {
		ve.add(path, CodeConstraint, fmt.Sprintf("must be at least %d, got %d", *f.Min, n), n)
		valid = false
	}
	if f.Max != nil && n > *f.Max {
		ve.add(path, CodeConstraint, fmt.Sprintf("must be at most %d, got %d", *f.Max, n), n)
		valid = false
	}
	return n, valid
}

func parseObject(f Field, path string, raw any, ve *ValidationError) (any, bool) {
	doc, ok := raw.(map[string]any)
	if !ok {
		ve.add(path, CodeShape, fmt.Sprintf("expected an object, got %T", raw), raw)
		return nil, false
	}

	before := len(ve.Errors)
	out := make(map[string]any, len(f.Fields))
	for _, sub := range f.Fields {
		subPath := path + "." + sub.Name
		raw, present := doc[sub.Name]
		if !present || raw == nil {
			if sub.Default != nil {
				out[sub.Name] = sub.Default
			} else if sub.Required {
				ve.add(subPath, CodeRequired, "required field is missing", nil)
			}
			continue
		}
		if value, ok := parseValue(sub, subPath, raw, ve); ok {
			out[sub.Name] = value
		}
	}
	return out, len(ve.Errors) == before
}

func parseArray(f Field, path string, raw any, ve *ValidationError) (any, bool) {
	items, ok := raw.([]any)
	if !ok {
		ve.add(path, CodeType, fmt.Sprintf("expected an array, got %T", raw), raw)
		return nil, false
	}

	valid := true
	if f.MinItems > 0 && len(items) < f.MinItems {
		ve.add(path, CodeConstraint,
			fmt.Sprintf("must have at least %d items, got %d", f.MinItems, len(items)), nil)
		valid = false
	}
	if f.MaxItems > 0 && len(items) > f.MaxItems {
		ve.add(path, CodeConstraint,
			fmt.Sprintf("must have at most %d items, got %d", f.MaxItems, len(items)), nil)
		valid = false
	}

	out := make([]any, 0, len(items))
	for i, item := range items {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		value, ok := parseValue(*f.Elem, elemPath, item, ve)
		if !ok {
			valid = false
			continue
		}
		out = append(out, value)
	}
	return out, valid
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
