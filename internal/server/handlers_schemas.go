package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/talentledger/contracts/internal/contract"
)

// SchemasHandler serves the registry's schemas as JSON Schema documents and
// validates ad-hoc documents against them.
type SchemasHandler struct {
	registry *contract.Registry
}

// NewSchemasHandler creates a SchemasHandler.
func NewSchemasHandler(registry *contract.Registry) *SchemasHandler {
	return &SchemasHandler{registry: registry}
}

// KindsResponse lists every registered kind, base and derived.
type KindsResponse struct {
	Kinds []string `json:"kinds"`
}

// List handles GET /v1/schemas.
func (h *SchemasHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, KindsResponse{Kinds: h.registry.Kinds()})
}

// Get handles GET /v1/schemas/{kind}, returning the kind's JSON Schema.
func (h *SchemasHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	schema, ok := h.registry.Schema(kind)
	if !ok {
		err := &contract.UnknownKindError{Kind: kind}
		errorResponse(w, HTTPStatus(err), apiError(err))
		return
	}
	jsonResponse(w, http.StatusOK, contract.JSONSchema(schema))
}

// ValidateResult reports a validation outcome without persisting anything.
type ValidateResult struct {
	Valid  bool                  `json:"valid"`
	Errors []contract.FieldError `json:"errors,omitempty"`
	Doc    map[string]any        `json:"doc,omitempty"`
}

// Validate handles POST /v1/validate/{kind}: parses the request body against
// the kind and reports every violation. A 200 response is returned either
// way; only malformed JSON or an unknown kind is an HTTP-level failure.
func (h *SchemasHandler) Validate(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	if _, ok := h.registry.Schema(kind); !ok {
		err := &contract.UnknownKindError{Kind: kind}
		errorResponse(w, HTTPStatus(err), apiError(err))
		return
	}

	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errorResponse(w, http.StatusBadRequest, APIError{Code: "bad_request", Message: "invalid request body"})
		return
	}

	doc, err := h.registry.Parse(kind, body)
	if err != nil {
		var ve *contract.ValidationError
		if errors.As(err, &ve) {
			jsonResponse(w, http.StatusOK, ValidateResult{Valid: false, Errors: ve.Errors})
			return
		}
		errorResponse(w, http.StatusInternalServerError, apiError(err))
		return
	}

	jsonResponse(w, http.StatusOK, ValidateResult{Valid: true, Doc: doc})
}
