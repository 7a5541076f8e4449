package contract

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// JSONSchema exports a schema as a draft-07 JSON Schema document. The export
// is used by the schema endpoints and the CLI so that non-Go consumers (the
// two web front ends) can validate against the same contracts.
func JSONSchema(s *Schema) map[string]any {
	doc := map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title":   s.Kind,
		"type":    "object",
	}

	properties := make(map[string]any, len(s.Fields))
	var required []string
	for _, f := range s.Fields {
		properties[f.Name] = fieldJSONSchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}
	doc["properties"] = properties
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

func fieldJSONSchema(f Field) map[string]any {
	prop := make(map[string]any)

	switch f.Type {
	case TypeString, TypeEmail, TypeURL, TypeUUID:
		prop["type"] = "string"
		switch f.Type {
		case TypeEmail:
			prop["format"] = "email"
		case TypeURL:
			prop["format"] = "uri"
		case TypeUUID:
			prop["format"] = "uuid"
		}
		if f.MinLen > 0 {
			prop["minLength"] = f.MinLen
		}
		if f.MaxLen > 0 {
			prop["maxLength"] = f.MaxLen
		}
		if f.Pattern != nil {
			prop["pattern"] = f.Pattern.String()
		}
		if len(f.Enum) > 0 {
			prop["enum"] = f.Enum
		}
	case TypeInt, TypeCents:
		prop["type"] = "integer"
		if f.Min != nil {
			prop["minimum"] = *f.Min
		}
		if f.Max != nil {
			prop["maximum"] = *f.Max
		}
	case TypeBool:
		prop["type"] = "boolean"
	case TypeDate:
		// Dates are coercible from ISO 8601 strings or epoch numbers.
		prop["type"] = []string{"string", "number"}
	case TypeObject:
		prop["type"] = "object"
		properties := make(map[string]any, len(f.Fields))
		var required []string
		for _, sub := range f.Fields {
			properties[sub.Name] = fieldJSONSchema(sub)
			if sub.Required {
				required = append(required, sub.Name)
			}
		}
		prop["properties"] = properties
		if len(required) > 0 {
			prop["required"] = required
		}
	case TypeArray:
		prop["type"] = "array"
		if f.Elem != nil {
			prop["items"] = fieldJSONSchema(*f.Elem)
		}
		if f.MinItems > 0 {
			prop["minItems"] = f.MinItems
		}
		if f.MaxItems > 0 {
			prop["maxItems"] = f.MaxItems
		}
	}

	if f.Default != nil {
		prop["default"] = f.Default
	}
	return prop
}

// ValidateJSONSchema validates a JSON-decoded document against the exported
// JSON Schema for s, returning a *ValidationError with one entry per failing
// field. This is the cross-check path used by the CLI validate command; the
// canonical parser remains Schema.Parse.
func ValidateJSONSchema(s *Schema, document any) error {
	schemaLoader := gojsonschema.NewGoLoader(JSONSchema(s))
	documentLoader := gojsonschema.NewGoLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to load schema for %s: %w", s.Kind, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Kind: s.Kind}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.add(field, CodeConstraint, desc.Description(), desc.Value())
	}
	return ve
}
