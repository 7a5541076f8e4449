package server

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/talentledger/contracts/internal/catalog"
	"github.com/talentledger/contracts/internal/config"
	"github.com/talentledger/contracts/internal/db"
	"github.com/talentledger/contracts/internal/server/ratelimit"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*db.Record
	users   map[string]*db.AuthUser
}

func newMemStore() *memStore {
	return &memStore{
		records: make(map[uuid.UUID]*db.Record),
		users:   make(map[string]*db.AuthUser),
	}
}

func (m *memStore) CreateRecord(_ context.Context, rec *db.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	stored := *rec
	m.records[rec.ID] = &stored
	return nil
}

func (m *memStore) GetRecord(_ context.Context, tenantID uuid.UUID, kind string, id uuid.UUID) (*db.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok || rec.TenantID != tenantID || rec.Kind != kind {
		return nil, nil
	}
	out := *rec
	return &out, nil
}

func (m *memStore) ListRecords(_ context.Context, tenantID uuid.UUID, kind string, page, perPage int) ([]db.Record, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []db.Record
	for _, rec := range m.records {
		if rec.TenantID == tenantID && rec.Kind == kind {
			matched = append(matched, *rec)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (m *memStore) UpdateRecord(_ context.Context, rec *db.Record) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.records[rec.ID]
	if !ok || existing.TenantID != rec.TenantID || existing.Kind != rec.Kind {
		return false, nil
	}
	rec.UpdatedAt = time.Now().UTC()
	stored := *rec
	m.records[rec.ID] = &stored
	return true, nil
}

func (m *memStore) DeleteRecord(_ context.Context, tenantID uuid.UUID, kind string, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok || rec.TenantID != tenantID || rec.Kind != kind {
		return false, nil
	}
	delete(m.records, id)
	return true, nil
}

func (m *memStore) CreateUser(_ context.Context, user *db.AuthUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.CreatedAt = time.Now().UTC()
	stored := *user
	m.users[user.Email] = &stored
	return nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*db.AuthUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	out := *user
	return &out, nil
}

// newTestServer builds a server over a fresh in-memory store with rate
// limiting disabled.
func newTestServer() (*Server, *memStore) {
	store := newMemStore()
	s := newServer(
		store,
		catalog.Default(),
		&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1},
		&config.PasswordConfig{BcryptCost: 10},
		ratelimit.Config{Enabled: false},
	)
	return s, store
}

// testToken issues a token for a fresh user in the given tenant.
func testToken(s *Server, tenantID uuid.UUID) string {
	token, err := s.jwtService.GenerateToken(uuid.New(), tenantID, "org_admin")
	if err != nil {
		panic(err)
	}
	return token
}
