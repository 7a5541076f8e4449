package contract

import "regexp"

// FieldType identifies the wire representation and validation rules of a field.
type FieldType string

// Supported field types. Money amounts are always TypeCents (integer cents,
// never floating point). Dates accept ISO 8601 strings or numeric timestamps
// and normalize to time.Time.
const (
	TypeString FieldType = "string"
	TypeInt    FieldType = "int"
	TypeCents  FieldType = "cents"
	TypeBool   FieldType = "bool"
	TypeUUID   FieldType = "uuid"
	TypeEmail  FieldType = "email"
	TypeURL    FieldType = "url"
	TypeDate   FieldType = "date"
	TypeObject FieldType = "object"
	TypeArray  FieldType = "array"
)

// Field declares one entity field: its type and every constraint it must
// satisfy. The schema parser is driven entirely by this table; there is no
// hand-written per-entity validation code.
type Field struct {
	Name     string
	Type     FieldType
	Required bool

	// Default is applied when the field is absent from input. Cleared by
	// Partial(): an absent field in an update means "leave unchanged".
	Default any

	// Enum restricts a string field to a closed, exact-match value set.
	Enum []string

	// Pattern restricts a string field to the given regexp.
	Pattern *regexp.Regexp

	// MinLen/MaxLen bound string length in runes. MaxLen of 0 means unbounded.
	MinLen int
	MaxLen int

	// Min/Max bound integer fields inclusively. Nil means unbounded.
	Min *int64
	Max *int64

	// MinItems/MaxItems bound array length. MaxItems of 0 means unbounded.
	MinItems int
	MaxItems int

	// Elem describes every element of an array field.
	Elem *Field

	// Fields describes the members of an object field.
	Fields []Field
}

// Int64 returns a pointer to v, for use in Field bound declarations.
func Int64(v int64) *int64 {
	return &v
}

// clone returns a copy of the field safe to mutate independently. Elem and
// Fields are copied; Pattern, Enum, and bound pointers are shared because
// they are never mutated after declaration.
func (f Field) clone() Field {
	out := f
	if f.Elem != nil {
		elem := f.Elem.clone()
		out.Elem = &elem
	}
	if f.Fields != nil {
		out.Fields = make([]Field, len(f.Fields))
		for i, sub := range f.Fields {
			out.Fields[i] = sub.clone()
		}
	}
	return out
}
