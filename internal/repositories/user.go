package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Ifrah-c/personal-note-app/internal/models"
)

// UserReadRepository looks users up in the credential store.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil when there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash
		FROM users
		WHERE username = ?
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, r.db.Rebind(query), username)

	logQuery(query, []any{username}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &user, nil
}

// UserWriteRepository persists new users.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns the assigned id. A taken username yields
// ErrConflict; the UNIQUE constraint decides concurrent signups.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (username, password_hash)
		VALUES (?, ?)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, r.db.Rebind(query), username, passwordHash)

	// the hash stays out of the log
	logQuery(query, []any{username, masked}, id, err)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrConflict
		}
		return 0, fmt.Errorf("save user: %w", err)
	}
	return id, nil
}
