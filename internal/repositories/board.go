package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-boards/internal/models"
)

const boardColumns = `id, user_id, name, description, created_at, updated_at`

// BoardReadRepository reads boards. Every query is scoped to the owner.
type BoardReadRepository struct {
	db *sqlx.DB
}

func NewBoardReadRepository(db *sqlx.DB) *BoardReadRepository {
	return &BoardReadRepository{db: db}
}

// ListByUser returns the user's boards, newest first, with todo counters.
func (r *BoardReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.BoardSummary, error) {
	const query = `
		SELECT b.id, b.user_id, b.name, b.description, b.created_at, b.updated_at,
		       COUNT(t.id) AS todo_count,
		       COUNT(t.id) FILTER (WHERE t.is_completed) AS completed_count
		FROM boards b
		LEFT JOIN todos t ON t.board_id = b.id
		WHERE b.user_id = $1
		GROUP BY b.id
		ORDER BY b.created_at DESC, b.id DESC
	`

	boards := []models.BoardSummary{}
	err := r.db.SelectContext(ctx, &boards, query, userID)
	logQuery(query, []any{userID}, len(boards), err)

	if err != nil {
		return nil, err
	}
	return boards, nil
}

// GetByID returns the board when it exists and belongs to the user, nil otherwise.
func (r *BoardReadRepository) GetByID(ctx context.Context, userID, boardID int64) (*models.BoardDB, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE id = $1 AND user_id = $2`

	var board models.BoardDB
	err := r.db.GetContext(ctx, &board, query, boardID, userID)
	logQuery(query, []any{boardID, userID}, board.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// BoardWriteRepository writes boards. Every statement is scoped to the owner.
type BoardWriteRepository struct {
	db *sqlx.DB
}

func NewBoardWriteRepository(db *sqlx.DB) *BoardWriteRepository {
	return &BoardWriteRepository{db: db}
}

// Create inserts a board owned by userID.
func (r *BoardWriteRepository) Create(ctx context.Context, userID int64, name, description string) (*models.BoardDB, error) {
	query := `
		INSERT INTO boards (user_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING ` + boardColumns

	var board models.BoardDB
	err := r.db.GetContext(ctx, &board, query, userID, name, description)
	logQuery(query, []any{userID, name, description}, board.ID, err)

	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Update renames the board. Returns nil when the user owns no such board.
func (r *BoardWriteRepository) Update(ctx context.Context, userID, boardID int64, name, description string) (*models.BoardDB, error) {
	query := `
		UPDATE boards
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING ` + boardColumns

	var board models.BoardDB
	err := r.db.GetContext(ctx, &board, query, name, description, boardID, userID)
	logQuery(query, []any{name, description, boardID, userID}, board.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Delete removes the board and, through the foreign key, its todos.
// Reports whether a board owned by the user was deleted.
func (r *BoardWriteRepository) Delete(ctx context.Context, userID, boardID int64) (bool, error) {
	const query = `DELETE FROM boards WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, boardID, userID)
	n := rowsAffected(res)
	logQuery(query, []any{boardID, userID}, n, err)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
