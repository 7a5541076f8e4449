package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/talentledger/contracts/internal/contract"
	"github.com/talentledger/contracts/internal/db"
	"github.com/talentledger/contracts/internal/server/middleware"
)

const (
	defaultPerPage = 25
	maxPerPage     = 100
)

// ListMeta is the pagination block of a list response.
type ListMeta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ListResponse is the paginated list envelope.
type ListResponse struct {
	Data []db.Record `json:"data"`
	Meta ListMeta    `json:"meta"`
}

// RecordsHandler serves tenant-scoped CRUD over validated documents. Every
// write passes through the registry: creates validate against the kind's
// create shape, patches against its update shape.
type RecordsHandler struct {
	store    Store
	registry *contract.Registry
}

// NewRecordsHandler creates a RecordsHandler.
func NewRecordsHandler(store Store, registry *contract.Registry) *RecordsHandler {
	return &RecordsHandler{store: store, registry: registry}
}

// baseKind resolves the kind path segment to a registered base kind. Derived
// kinds (those with a dot) are validation shapes, not storable collections.
func (h *RecordsHandler) baseKind(kind string) (*contract.Schema, error) {
	if strings.Contains(kind, ".") {
		return nil, &contract.UnknownKindError{Kind: kind}
	}
	schema, ok := h.registry.Schema(kind)
	if !ok {
		return nil, &contract.UnknownKindError{Kind: kind}
	}
	return schema, nil
}

// createSchema returns the shape used for creates: the registered
// "<kind>.create" derivation when present, otherwise the base schema.
func (h *RecordsHandler) createSchema(kind string, base *contract.Schema) *contract.Schema {
	if s, ok := h.registry.Schema(kind + ".create"); ok {
		return s
	}
	return base
}

// updateSchema returns the shape used for patches: the registered
// "<kind>.update" derivation when present, otherwise a partial of the base.
func (h *RecordsHandler) updateSchema(kind string, base *contract.Schema) *contract.Schema {
	if s, ok := h.registry.Schema(kind + ".update"); ok {
		return s
	}
	return base.Partial()
}

// Create handles POST /v1/records/{kind}.
func (h *RecordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.GetPrincipal(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, APIError{Code: "unauthorized", Message: "authentication required"})
		return
	}

	kind := r.PathValue("kind")
	base, err := h.baseKind(kind)
	if err != nil {
		errorResponse(w, HTTPStatus(err), apiError(err))
		return
	}

	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errorResponse(w, http.StatusBadRequest, APIError{Code: "bad_request", Message: "invalid request body"})
		return
	}

	doc, err := h.createSchema(kind, base).Parse(body)
	if err != nil {
		errorResponse(w, HTTPStatus(err), apiError(err))
		return
	}

	rec := &db.Record{
		ID:       uuid.New(),
		TenantID: principal.TenantID,
		Kind:     kind,
		Doc:      doc,
	}
	if err := h.store.CreateRecord(r.Context(), rec); err != nil {
		errorResponse(w, http.StatusInternalServerError, apiError(err))
		return
	}

	jsonResponse(w, http.StatusCreated, rec)
}

// List handles GET /v1/records/{kind}.
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.GetPrincipal(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, APIError{Code: "unauthorized", Message: "authentication required"})
		return
	}

	kind := r.PathValue("kind")
	if _, err := h.baseKind(kind); err != nil {
		errorResponse(w, HTTPStatus(err), apiError(err))
		return
	}

	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage := queryInt(r, "per_page", defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	records, total, err := h.store.ListRecords(r.Context(), principal.TenantID, kind, page, perPage)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, apiError(err))
		return
	}
	if records == nil {
		records = []db.Record{}
	}

	totalPages := (total + perPage - 1) / perPage
	jsonResponse(w, http.StatusOK, ListResponse{
		Data: records,
		Meta: ListMeta{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages},
	})
}

// Get handles GET /v1/records/{kind}/{id}.
func (h *RecordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.GetPrincipal(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, APIError{Code: "unauthorized", Message: "authentication required"})
		return
	}

	kind := r.PathValue("kind")
	if _, err := h.baseKind(kind); err != nil {
		errorResponse(w, HTTPStatus(err), apiError(err))
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, APIError{Code: "bad_request", Message: "invalid record id"})
		return
	}

	rec, err := h.store.GetRecord(r.Context(), principal.TenantID, kind, id)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, apiError(err))
		return
	}
	if rec == nil {
		notFound := &ErrRecordNotFound{Kind: kind, ID: id}
		errorResponse(w, HTTPStatus(notFound), apiError(notFound))
		return
	}

	jsonResponse(w, http.StatusOK, rec)
}

// Patch handles PATCH /v1/records/{kind}/{id}. The patch document validates
// against the kind's update shape, then merges field-by-field into the stored
// document. Absent fields keep their stored values.
func (h *RecordsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.GetPrincipal(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, APIError{Code: "unauthorized", Message: "authentication required"})
		return
	}

	kind := r.PathValue("kind")
	base, err := h.baseKind(kind)
	if err != nil {
		errorResponse(w, HTTPStatus(err), apiError(err))
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, APIError{Code: "bad_request", Message: "invalid record id"})
		return
	}

	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errorResponse(w, http.StatusBadRequest, APIError{Code: "bad_request", Message: "invalid request body"})
		return
	}

	patch, err := h.updateSchema(kind, base).Parse(body)
	if err != nil {
		errorResponse(w, HTTPStatus(err), apiError(err))
		return
	}

	rec, err := h.store.GetRecord(r.Context(), principal.TenantID, kind, id)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, apiError(err))
		return
	}
	if rec == nil {
		notFound := &ErrRecordNotFound{Kind: kind, ID: id}
		errorResponse(w, HTTPStatus(notFound), apiError(notFound))
		return
	}

	for name, value := range patch {
		rec.Doc[name] = value
	}

	updated, err := h.store.UpdateRecord(r.Context(), rec)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, apiError(err))
		return
	}
	if !updated {
		notFound := &ErrRecordNotFound{Kind: kind, ID: id}
		errorResponse(w, HTTPStatus(notFound), apiError(notFound))
		return
	}

	jsonResponse(w, http.StatusOK, rec)
}

// Delete handles DELETE /v1/records/{kind}/{id}.
func (h *RecordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.GetPrincipal(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, APIError{Code: "unauthorized", Message: "authentication required"})
		return
	}

	kind := r.PathValue("kind")
	if _, err := h.baseKind(kind); err != nil {
		errorResponse(w, HTTPStatus(err), apiError(err))
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, APIError{Code: "bad_request", Message: "invalid record id"})
		return
	}

	deleted, err := h.store.DeleteRecord(r.Context(), principal.TenantID, kind, id)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, apiError(err))
		return
	}
	if !deleted {
		notFound := &ErrRecordNotFound{Kind: kind, ID: id}
		errorResponse(w, HTTPStatus(notFound), apiError(notFound))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
