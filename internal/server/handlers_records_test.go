package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentledger/contracts/internal/db"
)

func validJobPost() map[string]any {
	return map[string]any{
		"title":           "Backend Engineer",
		"description":     "Build and operate the hiring platform services.",
		"work_mode":       "remote",
		"employment_type": "full_time",
	}
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestCreateRecord_AppliesDefaults(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	w := doJSON(t, routes, http.MethodPost, "/v1/records/job_post", token, validJobPost())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var rec db.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, "job_post", rec.Kind)
	assert.Equal(t, "draft", rec.Doc["status"])
	assert.Equal(t, "public", rec.Doc["visibility"])
	assert.Equal(t, false, rec.Doc["is_urgent"])
}

func TestCreateRecord_ValidationFailure(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	body := validJobPost()
	delete(body, "title")
	body["work_mode"] = "from_the_moon"

	w := doJSON(t, routes, http.MethodPost, "/v1/records/job_post", token, body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Code)

	details, ok := resp.Details.([]any)
	require.True(t, ok)
	assert.Len(t, details, 2)
}

// The error envelope carries code/message/details at the top level of the
// body, not nested under another key.
func TestErrorEnvelope_TopLevelShape(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	w := doJSON(t, routes, http.MethodPost, "/v1/records/job_post", token, map[string]any{})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation_failed", body["code"])
	assert.Contains(t, body, "message")
	assert.Contains(t, body, "details")
	assert.NotContains(t, body, "error")
}

func TestCreateRecord_UnknownKind(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	w := doJSON(t, routes, http.MethodPost, "/v1/records/spaceship", token, map[string]any{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecord_DerivedKindNotACollection(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	w := doJSON(t, routes, http.MethodPost, "/v1/records/job_post.create", token, validJobPost())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecord_RequiresAuth(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()

	w := doJSON(t, routes, http.MethodPost, "/v1/records/job_post", "", validJobPost())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetRecord_RoundTrip(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	created := doJSON(t, routes, http.MethodPost, "/v1/records/job_post", token, validJobPost())
	require.Equal(t, http.StatusCreated, created.Code)

	var rec db.Record
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &rec))

	w := doJSON(t, routes, http.MethodGet, "/v1/records/job_post/"+rec.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got db.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "Backend Engineer", got.Doc["title"])
}

func TestGetRecord_CrossTenantIsNotFound(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	ownerToken := testToken(s, uuid.New())
	otherToken := testToken(s, uuid.New())

	created := doJSON(t, routes, http.MethodPost, "/v1/records/job_post", ownerToken, validJobPost())
	require.Equal(t, http.StatusCreated, created.Code)

	var rec db.Record
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &rec))

	w := doJSON(t, routes, http.MethodGet, "/v1/records/job_post/"+rec.ID.String(), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Code)
}

func TestListRecords_PaginationEnvelope(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	for i := 0; i < 3; i++ {
		body := validJobPost()
		body["title"] = fmt.Sprintf("Engineer %d", i)
		w := doJSON(t, routes, http.MethodPost, "/v1/records/job_post", token, body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, routes, http.MethodGet, "/v1/records/job_post?page=1&per_page=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 2, resp.Meta.PerPage)
	assert.Equal(t, 3, resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}

func TestListRecords_PerPageCapped(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	w := doJSON(t, routes, http.MethodGet, "/v1/records/job_post?per_page=9999", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, maxPerPage, resp.Meta.PerPage)
	assert.Empty(t, resp.Data)
}

func TestPatchRecord_MergesFields(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	created := doJSON(t, routes, http.MethodPost, "/v1/records/job_post", token, validJobPost())
	require.Equal(t, http.StatusCreated, created.Code)

	var rec db.Record
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &rec))

	patch := map[string]any{"status": "open", "title": "Senior Backend Engineer"}
	w := doJSON(t, routes, http.MethodPatch, "/v1/records/job_post/"+rec.ID.String(), token, patch)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated db.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "open", updated.Doc["status"])
	assert.Equal(t, "Senior Backend Engineer", updated.Doc["title"])
	// Untouched fields survive the merge.
	assert.Equal(t, "remote", updated.Doc["work_mode"])
}

func TestPatchRecord_EmptyPatchIsNoOp(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	created := doJSON(t, routes, http.MethodPost, "/v1/records/job_post", token, validJobPost())
	require.Equal(t, http.StatusCreated, created.Code)

	var rec db.Record
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &rec))

	w := doJSON(t, routes, http.MethodPatch, "/v1/records/job_post/"+rec.ID.String(), token, map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)

	var updated db.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, rec.Doc["title"], updated.Doc["title"])
	assert.Equal(t, rec.Doc["status"], updated.Doc["status"])
}

func TestPatchRecord_InvalidPatchRejected(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	created := doJSON(t, routes, http.MethodPost, "/v1/records/job_post", token, validJobPost())
	require.Equal(t, http.StatusCreated, created.Code)

	var rec db.Record
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &rec))

	w := doJSON(t, routes, http.MethodPatch, "/v1/records/job_post/"+rec.ID.String(), token,
		map[string]any{"status": "launched"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteRecord(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	created := doJSON(t, routes, http.MethodPost, "/v1/records/job_post", token, validJobPost())
	require.Equal(t, http.StatusCreated, created.Code)

	var rec db.Record
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &rec))

	w := doJSON(t, routes, http.MethodDelete, "/v1/records/job_post/"+rec.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, routes, http.MethodGet, "/v1/records/job_post/"+rec.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecord_CrossTenantIsNotFound(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	ownerToken := testToken(s, uuid.New())
	otherToken := testToken(s, uuid.New())

	created := doJSON(t, routes, http.MethodPost, "/v1/records/job_post", ownerToken, validJobPost())
	require.Equal(t, http.StatusCreated, created.Code)

	var rec db.Record
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &rec))

	w := doJSON(t, routes, http.MethodDelete, "/v1/records/job_post/"+rec.ID.String(), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Still there for its owner.
	w = doJSON(t, routes, http.MethodGet, "/v1/records/job_post/"+rec.ID.String(), ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetRecord_InvalidID(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	token := testToken(s, uuid.New())

	w := doJSON(t, routes, http.MethodGet, "/v1/records/job_post/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRecords_TenantsSeeOnlyTheirOwn(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Routes()
	tokenA := testToken(s, uuid.New())
	tokenB := testToken(s, uuid.New())

	require.Equal(t, http.StatusCreated,
		doJSON(t, routes, http.MethodPost, "/v1/records/job_post", tokenA, validJobPost()).Code)
	require.Equal(t, http.StatusCreated,
		doJSON(t, routes, http.MethodPost, "/v1/records/job_post", tokenB, validJobPost()).Code)

	w := doJSON(t, routes, http.MethodGet, "/v1/records/job_post", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Meta.Total)
}
