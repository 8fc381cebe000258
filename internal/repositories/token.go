package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-boards/internal/models"
)

// TokenReadRepository looks up single-use tokens.
type TokenReadRepository struct {
	db *sqlx.DB
}

func NewTokenReadRepository(db *sqlx.DB) *TokenReadRepository {
	return &TokenReadRepository{db: db}
}

// GetValid returns the unexpired token of the given kind with exactly this
// value, or nil.
func (r *TokenReadRepository) GetValid(ctx context.Context, token string, kind models.TokenType) (*models.TokenDB, error) {
	const query = `
		SELECT id, user_id, token, type, expires_at, created_at
		FROM tokens
		WHERE token = $1 AND type = $2 AND expires_at > NOW()
	`

	var row models.TokenDB
	err := r.db.GetContext(ctx, &row, query, token, string(kind))
	logQuery(query, []any{redacted, kind}, row.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// TokenWriteRepository issues and consumes single-use tokens.
type TokenWriteRepository struct {
	db *sqlx.DB
}

func NewTokenWriteRepository(db *sqlx.DB) *TokenWriteRepository {
	return &TokenWriteRepository{db: db}
}

// Create stores a token. Returns models.ErrDuplicate on a value collision.
func (r *TokenWriteRepository) Create(ctx context.Context, userID int64, token string, kind models.TokenType, expiresAt time.Time) error {
	const query = `
		INSERT INTO tokens (user_id, token, type, expires_at)
		VALUES ($1, $2, $3, $4)
	`

	res, err := r.db.ExecContext(ctx, query, userID, token, string(kind), expiresAt)
	logQuery(query, []any{userID, redacted, kind, expiresAt}, rowsAffected(res), err)
	return translateError(err)
}

// Delete consumes a token.
func (r *TokenWriteRepository) Delete(ctx context.Context, token string) error {
	const query = `DELETE FROM tokens WHERE token = $1`

	res, err := r.db.ExecContext(ctx, query, token)
	logQuery(query, []any{redacted}, rowsAffected(res), err)
	return err
}

// DeleteByUser removes every token of the given kind issued to the user.
func (r *TokenWriteRepository) DeleteByUser(ctx context.Context, userID int64, kind models.TokenType) error {
	const query = `DELETE FROM tokens WHERE user_id = $1 AND type = $2`

	res, err := r.db.ExecContext(ctx, query, userID, string(kind))
	logQuery(query, []any{userID, kind}, rowsAffected(res), err)
	return err
}
