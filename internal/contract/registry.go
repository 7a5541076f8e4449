package contract

import (
	"fmt"
	"sort"
)

// Registry is an immutable table of entity kind to schema. All registration
// happens during process initialization; afterwards the registry is read-only
// and requires no synchronization for concurrent parsing.
type Registry struct {
	schemas map[string]*Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register adds a schema to the registry. Registering an empty or duplicate
// kind, or a malformed field table, is a programmer error and panics at init
// time.
func (r *Registry) Register(s *Schema) {
	if s.Kind == "" {
		panic("contract: schema registered without a kind")
	}
	if _, exists := r.schemas[s.Kind]; exists {
		panic(fmt.Sprintf("contract: duplicate schema kind %q", s.Kind))
	}
	for _, f := range s.Fields {
		checkField(s.Kind, f.Name, f)
	}
	r.schemas[s.Kind] = s
}

// checkField rejects field tables that would fail at parse time rather than
// registration, such as an array field with no element spec.
func checkField(kind, path string, f Field) {
	if f.Type == TypeArray && f.Elem == nil {
		panic(fmt.Sprintf("contract: schema %q field %q is an array without an element spec", kind, path))
	}
	if f.Elem != nil {
		checkField(kind, path+"[]", *f.Elem)
	}
	for _, nested := range f.Fields {
		checkField(kind, path+"."+nested.Name, nested)
	}
}

// Schema returns the schema registered for kind.
func (r *Registry) Schema(kind string) (*Schema, bool) {
	s, ok := r.schemas[kind]
	return s, ok
}

// Parse validates input against the schema registered for kind. It returns
// *UnknownKindError for an unregistered kind and *ValidationError for any
// document violation.
func (r *Registry) Parse(kind string, input any) (map[string]any, error) {
	s, ok := r.schemas[kind]
	if !ok {
		return nil, &UnknownKindError{Kind: kind}
	}
	return s.Parse(input)
}

// Kinds returns every registered kind in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.schemas))
	for kind := range r.schemas {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
