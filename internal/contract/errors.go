// Package contract implements the shared domain contract registry: declarative
// entity schemas, a validating parser for untyped JSON input, and the derived
// create/update input shapes used by both platform APIs.
package contract

import (
	"fmt"
	"strings"
)

// Violation codes classify why a field failed validation.
const (
	CodeShape      = "shape"      // input is not an object where one was required
	CodeRequired   = "required"   // required field absent
	CodeType       = "type"       // wrong primitive type
	CodeConstraint = "constraint" // out of bounds, pattern mismatch, enum miss
	CodeFormat     = "format"     // malformed email, URL, UUID, or date
)

// FieldError represents a single validation error at a specific field path.
// Array element paths include the offending index, e.g. "criteria[2].rating".
type FieldError struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ValidationError aggregates every violation found while parsing one document.
// Parsing never stops at the first violation; callers render field-level errors.
type ValidationError struct {
	Kind   string       `json:"kind"`
	Errors []FieldError `json:"errors"`
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed for %s:\n", ve.Kind))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Path, err.Message))
	}
	return sb.String()
}

// add appends a violation, prefixing the path when nested.
func (ve *ValidationError) add(path, code, message string, value any) {
	ve.Errors = append(ve.Errors, FieldError{
		Path:    path,
		Code:    code,
		Message: message,
		Value:   value,
	})
}

// UnknownKindError indicates a parse request for an unregistered entity kind.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown entity kind: %s", e.Kind)
}
