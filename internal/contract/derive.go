package contract

// Derived shapes are built structurally from a base schema: Create shapes omit
// the server-controlled fields, Update shapes make every remaining field
// optional. Derivation is pure and has no runtime side effects.

// WithKind returns a copy of the schema under a new kind name.
func (s *Schema) WithKind(kind string) *Schema {
	out := &Schema{Kind: kind, Fields: make([]Field, len(s.Fields))}
	for i, f := range s.Fields {
		out.Fields[i] = f.clone()
	}
	return out
}

// Omit returns a copy of the schema without the named fields. Unknown names
// are ignored so the server-controlled field list can be shared across
// entities that do not all carry every field.
func (s *Schema) Omit(names ...string) *Schema {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	out := &Schema{Kind: s.Kind}
	for _, f := range s.Fields {
		if drop[f.Name] {
			continue
		}
		out.Fields = append(out.Fields, f.clone())
	}
	return out
}

// Partial returns a copy of the schema with every top-level field optional and
// defaults cleared: a field absent from an update leaves the stored value
// unchanged, while a field present must still satisfy its original constraint.
// Partial is idempotent; applying it to an already-partial schema is a no-op.
func (s *Schema) Partial() *Schema {
	out := s.WithKind(s.Kind)
	for i := range out.Fields {
		out.Fields[i].Required = false
		out.Fields[i].Default = nil
	}
	return out
}
