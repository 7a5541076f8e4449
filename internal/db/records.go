package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Record is one stored contract document. Doc holds the validated document
// as produced by the registry parser; it always excludes server-controlled
// fields, which live in the row columns.
type Record struct {
	ID        uuid.UUID      `json:"id"`
	TenantID  uuid.UUID      `json:"tenant_id"`
	Kind      string         `json:"kind"`
	Doc       map[string]any `json:"doc"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CreateRecord inserts a new record.
func (db *DB) CreateRecord(ctx context.Context, rec *Record) error {
	docJSON, err := json.Marshal(rec.Doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO records (id, tenant_id, kind, doc)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		rec.ID, rec.TenantID, rec.Kind, docJSON,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// GetRecord fetches one record scoped to a tenant. Returns nil when the
// record does not exist or belongs to another tenant.
func (db *DB) GetRecord(ctx context.Context, tenantID uuid.UUID, kind string, id uuid.UUID) (*Record, error) {
	rec := &Record{ID: id, TenantID: tenantID, Kind: kind}
	var docJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT doc, created_at, updated_at FROM records
		 WHERE id = $1 AND tenant_id = $2 AND kind = $3`,
		id, tenantID, kind,
	).Scan(&docJSON, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	if err := json.Unmarshal(docJSON, &rec.Doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return rec, nil
}

// ListRecords returns one page of a tenant's records of a kind, newest
// first, plus the total count for the pagination envelope.
func (db *DB) ListRecords(ctx context.Context, tenantID uuid.UUID, kind string, page, perPage int) ([]Record, int, error) {
	var total int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM records WHERE tenant_id = $1 AND kind = $2`,
		tenantID, kind,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count records: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, doc, created_at, updated_at FROM records
		 WHERE tenant_id = $1 AND kind = $2
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		tenantID, kind, perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec := Record{TenantID: tenantID, Kind: kind}
		var docJSON []byte
		if err := rows.Scan(&rec.ID, &docJSON, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan record: %w", err)
		}
		if err := json.Unmarshal(docJSON, &rec.Doc); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read records: %w", err)
	}
	return records, total, nil
}

// UpdateRecord replaces a record's document. Returns false when the record
// does not exist for the tenant.
func (db *DB) UpdateRecord(ctx context.Context, rec *Record) (bool, error) {
	docJSON, err := json.Marshal(rec.Doc)
	if err != nil {
		return false, fmt.Errorf("failed to marshal document: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE records SET doc = $1, updated_at = NOW()
		 WHERE id = $2 AND tenant_id = $3 AND kind = $4`,
		docJSON, rec.ID, rec.TenantID, rec.Kind,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteRecord removes a record scoped to a tenant. Returns false when the
// record does not exist for the tenant.
func (db *DB) DeleteRecord(ctx context.Context, tenantID uuid.UUID, kind string, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM records WHERE id = $1 AND tenant_id = $2 AND kind = $3`,
		id, tenantID, kind,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
