package repository

import (
	"context"
	"errors"
	"fmt"

	"volcano-insurance-api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateUser inserts u. A taken username yields ErrDuplicate.
func (r *Repository) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	sql := `
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, sql, u.ID, u.Username, u.Email, u.PasswordHash).Scan(&u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("repository: user %s: %w", u.Username, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("repository: failed to insert user: %w", err)
	}
	return nil
}

// GetUserByUsername returns the user with the given username.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	sql := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE username = $1
	`

	var u models.User
	err := r.db.QueryRow(ctx, sql, username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get user: %w", err)
	}
	return &u, nil
}
