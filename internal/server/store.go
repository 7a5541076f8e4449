package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentledger/contracts/internal/db"
)

// Store is the persistence surface the handlers need. *db.DB implements it;
// tests use an in-memory fake.
type Store interface {
	CreateRecord(ctx context.Context, rec *db.Record) error
	GetRecord(ctx context.Context, tenantID uuid.UUID, kind string, id uuid.UUID) (*db.Record, error)
	ListRecords(ctx context.Context, tenantID uuid.UUID, kind string, page, perPage int) ([]db.Record, int, error)
	UpdateRecord(ctx context.Context, rec *db.Record) (bool, error)
	DeleteRecord(ctx context.Context, tenantID uuid.UUID, kind string, id uuid.UUID) (bool, error)

	CreateUser(ctx context.Context, user *db.AuthUser) error
	GetUserByEmail(ctx context.Context, email string) (*db.AuthUser, error)
}
