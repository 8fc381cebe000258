package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-boards/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoWriteRepository_CreateAssignsPositions(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := createUser(t, db, "pos@example.com")

	board, err := NewBoardWriteRepository(db).Create(ctx, owner, "Work", "")
	require.NoError(t, err)
	repo := NewTodoWriteRepository(db, nil)

	due := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	first, err := repo.Create(ctx, owner, models.NewTodo{
		BoardID: board.ID, Title: "Write report", Priority: models.PriorityHigh, DueDate: &due,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, models.PriorityHigh, first.Priority)
	require.NotNil(t, first.DueDate)
	assert.True(t, due.Equal(*first.DueDate))
	assert.False(t, first.IsCompleted)

	second, err := repo.Create(ctx, owner, models.NewTodo{BoardID: board.ID, Title: "Review", Priority: models.PriorityMedium})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)
	assert.Nil(t, second.DueDate)

	_, err = db.Exec(`UPDATE todos SET position = 10 WHERE id = $1`, first.ID)
	require.NoError(t, err)

	third, err := repo.Create(ctx, owner, models.NewTodo{BoardID: board.ID, Title: "Ship", Priority: models.PriorityLow})
	require.NoError(t, err)
	assert.Equal(t, 11, third.Position)

	stranger := createUser(t, db, "stranger@example.com")
	none, err := repo.Create(ctx, stranger, models.NewTodo{BoardID: board.ID, Title: "Intrude", Priority: models.PriorityLow})
	require.NoError(t, err)
	assert.Nil(t, none)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM todos WHERE board_id = $1`, board.ID))
	assert.Equal(t, 3, count)
}

func TestTodoWriteRepository_CreateChecksOwnerInInsert(t *testing.T) {
	rawDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer rawDB.Close()
	db := sqlx.NewDb(rawDB, "sqlmock")

	mock.ExpectQuery(`INSERT INTO todos .+ FROM boards b\s+LEFT JOIN todos t ON t.board_id = b.id\s+WHERE b.id = \$1 AND b.user_id = \$6`).
		WithArgs(int64(5), "Write report", "", "medium", sqlmock.AnyArg(), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	todo, err := NewTodoWriteRepository(db, nil).Create(context.Background(), 9, models.NewTodo{
		BoardID: 5, Title: "Write report", Priority: models.PriorityMedium,
	})
	require.NoError(t, err)
	assert.Nil(t, todo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepositories_OwnershipAndReorder(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := createUser(t, db, "me@example.com")
	other := createUser(t, db, "you@example.com")

	boards := NewBoardWriteRepository(db)
	mine, err := boards.Create(ctx, owner, "Mine", "")
	require.NoError(t, err)
	theirs, err := boards.Create(ctx, other, "Theirs", "")
	require.NoError(t, err)

	readRepo := NewTodoReadRepository(db, nil)
	writeRepo := NewTodoWriteRepository(db, nil)

	a, err := writeRepo.Create(ctx, owner, models.NewTodo{BoardID: mine.ID, Title: "Write report", Priority: models.PriorityMedium})
	require.NoError(t, err)
	b, err := writeRepo.Create(ctx, owner, models.NewTodo{BoardID: mine.ID, Title: "Review", Priority: models.PriorityMedium})
	require.NoError(t, err)
	foreign, err := writeRepo.Create(ctx, other, models.NewTodo{BoardID: theirs.ID, Title: "Secret", Priority: models.PriorityMedium})
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, owner, a.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Write report", got.Title)

		got, err = readRepo.GetByID(ctx, owner, foreign.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("count owned", func(t *testing.T) {
		n, err := readRepo.CountOwned(ctx, owner, []int64{a.ID, b.ID})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = readRepo.CountOwned(ctx, owner, []int64{a.ID, foreign.ID})
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("reorder and list", func(t *testing.T) {
		require.NoError(t, writeRepo.UpdatePosition(ctx, b.ID, 0))
		require.NoError(t, writeRepo.UpdatePosition(ctx, a.ID, 1))

		todos, err := readRepo.ListByBoard(ctx, owner, mine.ID)
		require.NoError(t, err)
		require.Len(t, todos, 2)
		assert.Equal(t, "Review", todos[0].Title)
		assert.Equal(t, "Write report", todos[1].Title)

		todos, err = readRepo.ListByBoard(ctx, other, mine.ID)
		require.NoError(t, err)
		assert.Empty(t, todos)

		assert.ErrorIs(t, writeRepo.UpdatePosition(ctx, 99999, 0), sql.ErrNoRows)
	})

	t.Run("update", func(t *testing.T) {
		todo := *a
		todo.Title = "Write full report"
		todo.IsCompleted = true

		got, err := writeRepo.Update(ctx, other, &todo)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = writeRepo.Update(ctx, owner, &todo)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Write full report", got.Title)
		assert.True(t, got.IsCompleted)
		assert.Equal(t, 1, got.Position)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, owner, foreign.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = writeRepo.Delete(ctx, owner, a.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := readRepo.GetByID(ctx, owner, a.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestTodoWriteRepository_UsesRequestTx(t *testing.T) {
	rawDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer rawDB.Close()
	db := sqlx.NewDb(rawDB, "sqlmock")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE todos SET position").
		WithArgs(3, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewTodoWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
	require.NoError(t, repo.UpdatePosition(context.Background(), 7, 3))
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoReadRepository_CountOwnedExpandsIDs(t *testing.T) {
	rawDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer rawDB.Close()
	db := sqlx.NewDb(rawDB, "sqlmock")

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT t.id\)`).
		WithArgs(int64(1), int64(4), int64(5), int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := NewTodoReadRepository(db, nil).CountOwned(context.Background(), 1, []int64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
