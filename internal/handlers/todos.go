package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-todo-boards/internal/models"
	"github.com/sbilibin2017/gw-todo-boards/internal/services"
)

//go:generate mockgen -source=todos.go -destination=todos_mock.go -package=handlers

const (
	msgTodoNotFound = "Todo not found."
	msgAccessDenied = "Access denied."
)

// TodoCreator creates todos.
type TodoCreator interface {
	Create(ctx context.Context, userID int64, todo models.NewTodo) (*models.TodoDB, error)
}

// TodoLister lists the todos of a board.
type TodoLister interface {
	List(ctx context.Context, userID, boardID int64) ([]models.TodoDB, error)
}

// TodoGetter reads one todo.
type TodoGetter interface {
	Get(ctx context.Context, userID, todoID int64) (*models.TodoDB, error)
}

// TodoUpdater applies partial updates to todos.
type TodoUpdater interface {
	Update(ctx context.Context, userID, todoID int64, patch models.TodoPatch) (*models.TodoDB, error)
}

// TodoReorderer moves todos in bulk.
type TodoReorderer interface {
	Reorder(ctx context.Context, userID int64, items []models.ReorderItem) error
}

// TodoDeleter deletes todos.
type TodoDeleter interface {
	Delete(ctx context.Context, userID, todoID int64) error
}

// CreateTodoRequest represents the JSON body for creating a todo
// swagger:model CreateTodoRequest
type CreateTodoRequest struct {
	// Target board, required when the route has no board id
	BoardID json.Number `json:"boardId,omitempty" swaggertype:"integer" example:"1"`

	// required: true
	// default: Write report
	Title string `json:"title"`

	Description string `json:"description"`

	// One of low, medium, high. Defaults to medium.
	Priority models.Priority `json:"priority" swaggertype:"string" enums:"low,medium,high" example:"medium"`

	// RFC 3339 timestamp or YYYY-MM-DD date
	DueDate models.OptionalTime `json:"dueDate" swaggertype:"string" example:"2025-03-14"`
}

// UpdateTodoRequest represents a partial update. Omitted fields keep
// their values; a null or empty dueDate clears the date.
// swagger:model UpdateTodoRequest
type UpdateTodoRequest struct {
	Title       *string             `json:"title" example:"Review"`
	Description *string             `json:"description"`
	Priority    *models.Priority    `json:"priority" swaggertype:"string" enums:"low,medium,high"`
	DueDate     models.OptionalTime `json:"dueDate" swaggertype:"string" example:"2025-03-14"`
	IsCompleted *bool               `json:"isCompleted" example:"true"`
}

// ReorderTodosRequest lists the new positions
// swagger:model ReorderTodosRequest
type ReorderTodosRequest struct {
	Todos []models.ReorderItem `json:"todos"`
}

// TodoResponse wraps a single todo
// swagger:model TodoResponse
type TodoResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message,omitempty" example:"Todo created successfully!"`
	Todo    *models.TodoDB `json:"todo"`
}

// TodosResponse wraps the todos of a board
// swagger:model TodosResponse
type TodosResponse struct {
	Success bool            `json:"success" example:"true"`
	Todos   []models.TodoDB `json:"todos"`
}

// NewCreateTodoHandler returns an HTTP handler creating a todo. The board
// comes from the boardId path parameter when the route has one, from the
// request body otherwise.
// @Summary Create todo
// @Description Appends a todo after the last one of the board
// @Tags todos
// @Accept json
// @Produce json
// @Param boardId path int true "Board ID"
// @Param createTodoRequest body handlers.CreateTodoRequest true "Todo"
// @Success 201 {object} handlers.TodoResponse "Created todo"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Board not owned by user"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todos/boards/{boardId}/todos [post]
// @Security BearerAuth
func NewCreateTodoHandler(svc TodoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req CreateTodoRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		rawBoardID := chi.URLParam(r, "boardId")
		if rawBoardID == "" {
			rawBoardID = req.BoardID.String()
		}
		var boardID int64
		if rawBoardID != "" {
			id, err := strconv.ParseInt(rawBoardID, 10, 64)
			if err != nil || id <= 0 {
				writeError(w, http.StatusForbidden, msgAccessDenied)
				return
			}
			boardID = id
		}

		todo, err := svc.Create(r.Context(), uid, models.NewTodo{
			BoardID:     boardID,
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			DueDate:     req.DueDate.Time,
		})
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				writeError(w, http.StatusBadRequest, verr.Message)
			case errors.Is(err, services.ErrBoardForbidden):
				writeError(w, http.StatusForbidden, msgAccessDenied)
			default:
				writeInternal(w, r, err, "Server error while creating todo.")
			}
			return
		}

		writeJSON(w, http.StatusCreated, TodoResponse{
			Success: true,
			Message: "Todo created successfully!",
			Todo:    todo,
		})
	}
}

// NewListTodosHandler returns an HTTP handler listing a board's todos.
// @Summary List todos of a board
// @Description Ordered by position
// @Tags todos
// @Produce json
// @Param boardId path int true "Board ID"
// @Success 200 {object} handlers.TodosResponse "Todos"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Board not owned by user"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todos/boards/{boardId}/todos [get]
// @Security BearerAuth
func NewListTodosHandler(svc TodoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(r, "boardId")
		if !ok {
			writeError(w, http.StatusForbidden, msgAccessDenied)
			return
		}

		todos, err := svc.List(r.Context(), uid, boardID)
		if err != nil {
			if errors.Is(err, services.ErrBoardForbidden) {
				writeError(w, http.StatusForbidden, msgAccessDenied)
				return
			}
			writeInternal(w, r, err, "Server error while fetching todos.")
			return
		}

		writeJSON(w, http.StatusOK, TodosResponse{Success: true, Todos: todos})
	}
}

// NewGetTodoHandler returns an HTTP handler reading one todo.
// @Summary Get todo
// @Tags todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} handlers.TodoResponse "Todo"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todos/{id} [get]
// @Security BearerAuth
func NewGetTodoHandler(svc TodoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		todoID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgTodoNotFound)
			return
		}

		todo, err := svc.Get(r.Context(), uid, todoID)
		if err != nil {
			if errors.Is(err, services.ErrTodoNotFound) {
				writeError(w, http.StatusNotFound, msgTodoNotFound)
				return
			}
			writeInternal(w, r, err, "Server error while fetching todo.")
			return
		}

		writeJSON(w, http.StatusOK, TodoResponse{Success: true, Todo: todo})
	}
}

// NewUpdateTodoHandler returns an HTTP handler partially updating a todo.
// @Summary Update todo
// @Description Only the fields present in the body change
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param updateTodoRequest body handlers.UpdateTodoRequest true "Changed fields"
// @Success 200 {object} handlers.TodoResponse "Updated todo"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todos/{id} [put]
// @Security BearerAuth
func NewUpdateTodoHandler(svc TodoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req UpdateTodoRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		todoID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgTodoNotFound)
			return
		}

		todo, err := svc.Update(r.Context(), uid, todoID, models.TodoPatch{
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			DueDate:     req.DueDate,
			IsCompleted: req.IsCompleted,
		})
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				writeError(w, http.StatusBadRequest, verr.Message)
			case errors.Is(err, services.ErrTodoNotFound):
				writeError(w, http.StatusNotFound, msgTodoNotFound)
			default:
				writeInternal(w, r, err, "Server error while updating todo.")
			}
			return
		}

		writeJSON(w, http.StatusOK, TodoResponse{
			Success: true,
			Message: "Todo updated successfully!",
			Todo:    todo,
		})
	}
}

// NewReorderTodosHandler returns an HTTP handler moving todos in bulk. It
// must run inside the transaction middleware: a batch that names any todo
// the user does not own fails as a whole.
// @Summary Reorder todos
// @Description Applies every position or none
// @Tags todos
// @Accept json
// @Produce json
// @Param reorderTodosRequest body handlers.ReorderTodosRequest true "New positions"
// @Success 200 {object} handlers.MessageResponse "Reordered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid todos array"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Batch rejected or internal error"
// @Router /todos/reorder [put]
// @Security BearerAuth
func NewReorderTodosHandler(svc TodoReorderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req ReorderTodosRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid todos array.")
			return
		}

		if err := svc.Reorder(r.Context(), uid, req.Todos); err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				writeError(w, http.StatusBadRequest, verr.Message)
				return
			}
			writeInternal(w, r, err, "Server error while reordering todos.")
			return
		}

		writeMessage(w, http.StatusOK, "Todos reordered successfully!")
	}
}

// NewDeleteTodoHandler returns an HTTP handler deleting a todo.
// @Summary Delete todo
// @Tags todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} handlers.MessageResponse "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todos/{id} [delete]
// @Security BearerAuth
func NewDeleteTodoHandler(svc TodoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		todoID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgTodoNotFound)
			return
		}

		if err := svc.Delete(r.Context(), uid, todoID); err != nil {
			if errors.Is(err, services.ErrTodoNotFound) {
				writeError(w, http.StatusNotFound, msgTodoNotFound)
				return
			}
			writeInternal(w, r, err, "Server error while deleting todo.")
			return
		}

		writeMessage(w, http.StatusOK, "Todo deleted successfully!")
	}
}
