package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AuthUser is a platform user row used for authentication. The password
// hash never leaves this package except to the auth service.
type AuthUser struct {
	ID           uuid.UUID `json:"id"`
	TenantID     uuid.UUID `json:"tenant_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUser inserts a new platform user.
func (db *DB) CreateUser(ctx context.Context, user *AuthUser) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (id, tenant_id, email, password_hash, first_name, last_name, role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		user.ID, user.TenantID, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.Role,
	).Scan(&user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByEmail fetches a user by email. Returns nil when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*AuthUser, error) {
	user := &AuthUser{Email: email}
	err := db.pool.QueryRow(ctx,
		`SELECT id, tenant_id, password_hash, first_name, last_name, role, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.TenantID, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.Role, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
