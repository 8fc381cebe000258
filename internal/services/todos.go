package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-todo-boards/internal/logger"
	"github.com/sbilibin2017/gw-todo-boards/internal/models"
)

//go:generate mockgen -source=todos.go -destination=todos_mock.go -package=services

// TodoReader defines reads of todos scoped through their board's owner.
type TodoReader interface {
	ListByBoard(ctx context.Context, userID, boardID int64) ([]models.TodoDB, error)
	GetByID(ctx context.Context, userID, todoID int64) (*models.TodoDB, error)
	CountOwned(ctx context.Context, userID int64, ids []int64) (int, error)
}

// TodoWriter defines writes of todos.
type TodoWriter interface {
	Create(ctx context.Context, userID int64, todo models.NewTodo) (*models.TodoDB, error)
	Update(ctx context.Context, userID int64, todo *models.TodoDB) (*models.TodoDB, error)
	UpdatePosition(ctx context.Context, todoID int64, position int) error
	Delete(ctx context.Context, userID, todoID int64) (bool, error)
}

// TodoService manages todos. Operations that name a board directly report
// a foreign or missing board as ErrBoardForbidden; operations on a single
// todo report ErrTodoNotFound.
type TodoService struct {
	boards BoardReader
	reader TodoReader
	writer TodoWriter
}

// NewTodoService creates a new TodoService instance.
func NewTodoService(boards BoardReader, reader TodoReader, writer TodoWriter) *TodoService {
	return &TodoService{
		boards: boards,
		reader: reader,
		writer: writer,
	}
}

// Create appends a todo to a board of userID.
func (svc *TodoService) Create(ctx context.Context, userID int64, todo models.NewTodo) (*models.TodoDB, error) {
	if todo.BoardID <= 0 {
		return nil, invalid("Board ID is required.")
	}
	todo.Title = strings.TrimSpace(todo.Title)
	if todo.Title == "" {
		return nil, invalid("Todo title is required.")
	}
	if todo.Priority == "" {
		todo.Priority = models.PriorityMedium
	}
	if !todo.Priority.Valid() {
		return nil, invalid("Priority must be one of low, medium, high.")
	}

	created, err := svc.writer.Create(ctx, userID, todo)
	if err != nil {
		logger.Log.Errorw("failed to create todo", "user_id", userID, "board_id", todo.BoardID, "err", err)
		return nil, err
	}
	if created == nil {
		return nil, ErrBoardForbidden
	}
	return created, nil
}

// List returns the todos of a board of userID in position order.
func (svc *TodoService) List(ctx context.Context, userID, boardID int64) ([]models.TodoDB, error) {
	if err := svc.checkBoard(ctx, userID, boardID); err != nil {
		return nil, err
	}

	todos, err := svc.reader.ListByBoard(ctx, userID, boardID)
	if err != nil {
		logger.Log.Errorw("failed to list todos", "user_id", userID, "board_id", boardID, "err", err)
		return nil, err
	}
	return todos, nil
}

// Get returns one todo of userID.
func (svc *TodoService) Get(ctx context.Context, userID, todoID int64) (*models.TodoDB, error) {
	todo, err := svc.reader.GetByID(ctx, userID, todoID)
	if err != nil {
		logger.Log.Errorw("failed to get todo", "user_id", userID, "todo_id", todoID, "err", err)
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

// Update merges patch into a todo of userID. Fields absent from the patch
// keep their stored values.
func (svc *TodoService) Update(ctx context.Context, userID, todoID int64, patch models.TodoPatch) (*models.TodoDB, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, invalid("Todo title is required.")
		}
		patch.Title = &title
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, invalid("Priority must be one of low, medium, high.")
	}

	todo, err := svc.Get(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}
	patch.Apply(todo)

	updated, err := svc.writer.Update(ctx, userID, todo)
	if err != nil {
		logger.Log.Errorw("failed to update todo", "user_id", userID, "todo_id", todoID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrTodoNotFound
	}
	return updated, nil
}

// Reorder assigns new positions to a batch of todos. Ownership of the
// whole batch is verified before the first write, so when the calls share
// one transaction the batch is applied entirely or not at all.
func (svc *TodoService) Reorder(ctx context.Context, userID int64, items []models.ReorderItem) error {
	if len(items) == 0 {
		return invalid("Invalid todos array.")
	}

	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if item.ID <= 0 {
			return invalid("Invalid todos array.")
		}
		if _, ok := seen[item.ID]; !ok {
			seen[item.ID] = struct{}{}
			ids = append(ids, item.ID)
		}
	}

	owned, err := svc.reader.CountOwned(ctx, userID, ids)
	if err != nil {
		logger.Log.Errorw("failed to check todo ownership", "user_id", userID, "err", err)
		return err
	}
	if owned != len(ids) {
		logger.Log.Warnw("reorder denied", "user_id", userID, "requested", len(ids), "owned", owned)
		return ErrReorderDenied
	}

	for _, item := range items {
		err := svc.writer.UpdatePosition(ctx, item.ID, item.Position)
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Warnw("todo vanished during reorder", "user_id", userID, "todo_id", item.ID)
			return ErrReorderDenied
		}
		if err != nil {
			logger.Log.Errorw("failed to update todo position", "user_id", userID, "todo_id", item.ID, "err", err)
			return err
		}
	}
	return nil
}

// Delete removes a todo of userID.
func (svc *TodoService) Delete(ctx context.Context, userID, todoID int64) error {
	deleted, err := svc.writer.Delete(ctx, userID, todoID)
	if err != nil {
		logger.Log.Errorw("failed to delete todo", "user_id", userID, "todo_id", todoID, "err", err)
		return err
	}
	if !deleted {
		return ErrTodoNotFound
	}
	return nil
}

func (svc *TodoService) checkBoard(ctx context.Context, userID, boardID int64) error {
	board, err := svc.boards.GetByID(ctx, userID, boardID)
	if err != nil {
		logger.Log.Errorw("failed to get board", "user_id", userID, "board_id", boardID, "err", err)
		return err
	}
	if board == nil {
		return ErrBoardForbidden
	}
	return nil
}
