package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSchemas(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()

	w := doJSON(t, routes, http.MethodGet, "/v1/schemas", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp KindsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Kinds, "job_post")
	assert.Contains(t, resp.Kinds, "job_post.create")
	assert.Contains(t, resp.Kinds, "invoice")
}

func TestGetSchema_JSONSchemaShape(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()

	w := doJSON(t, routes, http.MethodGet, "/v1/schemas/job_post", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schema))
	assert.Equal(t, "object", schema["type"])
	assert.Contains(t, schema, "properties")

	required, ok := schema["required"].([]any)
	require.True(t, ok)
	assert.Contains(t, required, "title")
}

func TestGetSchema_UnknownKind(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()

	w := doJSON(t, routes, http.MethodGet, "/v1/schemas/spaceship", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidate_ValidDocument(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()

	w := doJSON(t, routes, http.MethodPost, "/v1/validate/job_post.create", "", validJobPost())
	require.Equal(t, http.StatusOK, w.Code)

	var resp ValidateResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, "draft", resp.Doc["status"])
}

func TestValidate_InvalidDocumentReportsAllErrors(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()

	body := map[string]any{
		"description":     "x",
		"work_mode":       "telepathy",
		"employment_type": "gig",
	}
	w := doJSON(t, routes, http.MethodPost, "/v1/validate/job_post.create", "", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ValidateResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Len(t, resp.Errors, 3)
}

func TestValidate_UnknownKind(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()

	w := doJSON(t, routes, http.MethodPost, "/v1/validate/spaceship", "", map[string]any{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidate_MalformedBody(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()

	w := doJSON(t, routes, http.MethodPost, "/v1/validate/job_post", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
