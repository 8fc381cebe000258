package repositories

import (
	"context"
	"testing"

	"github.com/sbilibin2017/gw-todo-boards/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardRepositories_CRUD(t *testing.T) {
	db := setupDB(t)
	readRepo := NewBoardReadRepository(db)
	writeRepo := NewBoardWriteRepository(db)
	ctx := context.Background()

	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")

	board, err := writeRepo.Create(ctx, owner, "Work", "")
	require.NoError(t, err)
	assert.Equal(t, "Work", board.Name)
	assert.Equal(t, owner, board.UserID)

	t.Run("get is owner scoped", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, owner, board.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, board.ID, got.ID)

		got, err = readRepo.GetByID(ctx, other, board.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update is owner scoped", func(t *testing.T) {
		got, err := writeRepo.Update(ctx, other, board.ID, "Hijack", "")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = writeRepo.Update(ctx, owner, board.ID, "Office", "daily work")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Office", got.Name)
		assert.Equal(t, "daily work", got.Description)
	})

	t.Run("delete is owner scoped and cascades", func(t *testing.T) {
		_, err := NewTodoWriteRepository(db, nil).Create(ctx, models.NewTodo{
			BoardID: board.ID, Title: "t", Priority: models.PriorityLow,
		})
		require.NoError(t, err)

		deleted, err := writeRepo.Delete(ctx, other, board.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = writeRepo.Delete(ctx, owner, board.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		var todos int
		require.NoError(t, db.Get(&todos, `SELECT COUNT(*) FROM todos WHERE board_id = $1`, board.ID))
		assert.Zero(t, todos)
	})
}

func TestBoardReadRepository_ListByUser(t *testing.T) {
	db := setupDB(t)
	readRepo := NewBoardReadRepository(db)
	writeRepo := NewBoardWriteRepository(db)
	todoRepo := NewTodoWriteRepository(db, nil)
	ctx := context.Background()

	owner := createUser(t, db, "lister@example.com")
	other := createUser(t, db, "someone@example.com")

	first, err := writeRepo.Create(ctx, owner, "First", "")
	require.NoError(t, err)
	second, err := writeRepo.Create(ctx, owner, "Second", "")
	require.NoError(t, err)
	_, err = writeRepo.Create(ctx, other, "Foreign", "")
	require.NoError(t, err)

	for i, title := range []string{"a", "b", "c"} {
		todo, err := todoRepo.Create(ctx, models.NewTodo{BoardID: first.ID, Title: title, Priority: models.PriorityMedium})
		require.NoError(t, err)
		if i == 0 {
			_, err = db.Exec(`UPDATE todos SET is_completed = TRUE WHERE id = $1`, todo.ID)
			require.NoError(t, err)
		}
	}

	boards, err := readRepo.ListByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, boards, 2)

	assert.Equal(t, second.ID, boards[0].ID, "newest first")
	assert.Equal(t, int64(0), boards[0].TodoCount)
	assert.Equal(t, int64(0), boards[0].CompletedCount)

	assert.Equal(t, first.ID, boards[1].ID)
	assert.Equal(t, int64(3), boards[1].TodoCount)
	assert.Equal(t, int64(1), boards[1].CompletedCount)

	empty, err := readRepo.ListByUser(ctx, createUser(t, db, "new@example.com"))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
