package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-boards/internal/models"
)

const todoColumns = `t.id, t.board_id, t.title, t.description, t.priority, t.due_date,
	t.is_completed, t.position, t.created_at, t.updated_at`

// TodoReadRepository reads todos through their board's owner.
type TodoReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTodoReadRepository(db *sqlx.DB, txGetter TxGetter) *TodoReadRepository {
	return &TodoReadRepository{db: db, txGetter: txGetter}
}

// ListByBoard returns the todos of a board owned by userID in position order.
func (r *TodoReadRepository) ListByBoard(ctx context.Context, userID, boardID int64) ([]models.TodoDB, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos t
		JOIN boards b ON b.id = t.board_id
		WHERE t.board_id = $1 AND b.user_id = $2
		ORDER BY t.position ASC, t.id ASC`

	todos := []models.TodoDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &todos, query, boardID, userID)
	logQuery(query, []any{boardID, userID}, len(todos), err)

	if err != nil {
		return nil, err
	}
	return todos, nil
}

// GetByID returns the todo when its board belongs to userID, nil otherwise.
func (r *TodoReadRepository) GetByID(ctx context.Context, userID, todoID int64) (*models.TodoDB, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos t
		JOIN boards b ON b.id = t.board_id
		WHERE t.id = $1 AND b.user_id = $2`

	var todo models.TodoDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &todo, query, todoID, userID)
	logQuery(query, []any{todoID, userID}, todo.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// CountOwned returns how many of the given todo ids belong to boards owned
// by userID. ids must not be empty.
func (r *TodoReadRepository) CountOwned(ctx context.Context, userID int64, ids []int64) (int, error) {
	exec := executor(ctx, r.db, r.txGetter)

	query, args, err := sqlx.In(`
		SELECT COUNT(DISTINCT t.id)
		FROM todos t
		JOIN boards b ON b.id = t.board_id
		WHERE b.user_id = ? AND t.id IN (?)`, userID, ids)
	if err != nil {
		return 0, err
	}
	query = exec.Rebind(query)

	var count int
	err = sqlx.GetContext(ctx, exec, &count, query, args...)
	logQuery(query, args, count, err)

	return count, err
}

// TodoWriteRepository writes todos.
type TodoWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTodoWriteRepository(db *sqlx.DB, txGetter TxGetter) *TodoWriteRepository {
	return &TodoWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a todo one past the board's highest position, or at 0 on
// an empty board. Returns nil when the board is gone or does not belong to
// userID.
func (r *TodoWriteRepository) Create(ctx context.Context, userID int64, todo models.NewTodo) (*models.TodoDB, error) {
	const query = `
		INSERT INTO todos (board_id, title, description, priority, due_date, position)
		SELECT b.id, $2::TEXT, $3::TEXT, $4::TEXT, $5::TIMESTAMPTZ, COALESCE(MAX(t.position), -1) + 1
		FROM boards b
		LEFT JOIN todos t ON t.board_id = b.id
		WHERE b.id = $1 AND b.user_id = $6
		GROUP BY b.id
		RETURNING id, board_id, title, description, priority, due_date,
		          is_completed, position, created_at, updated_at
	`
	args := []any{todo.BoardID, todo.Title, todo.Description, string(todo.Priority), todo.DueDate, userID}

	var created models.TodoDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)
	logQuery(query, args, created.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update stores the editable fields of todo. Returns nil when the todo is
// gone or its board does not belong to userID.
func (r *TodoWriteRepository) Update(ctx context.Context, userID int64, todo *models.TodoDB) (*models.TodoDB, error) {
	query := `
		UPDATE todos t
		SET title = $1, description = $2, priority = $3, due_date = $4,
		    is_completed = $5, updated_at = NOW()
		FROM boards b
		WHERE b.id = t.board_id AND t.id = $6 AND b.user_id = $7
		RETURNING ` + todoColumns
	args := []any{todo.Title, todo.Description, string(todo.Priority), todo.DueDate, todo.IsCompleted, todo.ID, userID}

	var updated models.TodoDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)
	logQuery(query, args, updated.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdatePosition moves one todo. Returns sql.ErrNoRows when the todo no
// longer exists.
func (r *TodoWriteRepository) UpdatePosition(ctx context.Context, todoID int64, position int) error {
	const query = `UPDATE todos SET position = $1, updated_at = NOW() WHERE id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, position, todoID)
	n := rowsAffected(res)
	logQuery(query, []any{position, todoID}, n, err)

	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a todo whose board belongs to userID. Reports whether a
// row was deleted.
func (r *TodoWriteRepository) Delete(ctx context.Context, userID, todoID int64) (bool, error) {
	const query = `
		DELETE FROM todos t
		USING boards b
		WHERE b.id = t.board_id AND t.id = $1 AND b.user_id = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, todoID, userID)
	n := rowsAffected(res)
	logQuery(query, []any{todoID, userID}, n, err)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
