package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-todo-boards/internal/models"
	"github.com/sbilibin2017/gw-todo-boards/internal/services"
)

//go:generate mockgen -source=boards.go -destination=boards_mock.go -package=handlers

const msgBoardNotFound = "Board not found."

// BoardCreator creates boards.
type BoardCreator interface {
	Create(ctx context.Context, userID int64, name, description string) (*models.BoardDB, error)
}

// BoardLister lists the boards of a user.
type BoardLister interface {
	List(ctx context.Context, userID int64) ([]models.BoardSummary, error)
}

// BoardGetter reads one board.
type BoardGetter interface {
	Get(ctx context.Context, userID, boardID int64) (*models.BoardDB, error)
}

// BoardUpdater renames boards.
type BoardUpdater interface {
	Update(ctx context.Context, userID, boardID int64, name, description string) (*models.BoardDB, error)
}

// BoardDeleter deletes boards.
type BoardDeleter interface {
	Delete(ctx context.Context, userID, boardID int64) error
}

// BoardRequest represents the JSON body for creating or updating a board
// swagger:model BoardRequest
type BoardRequest struct {
	// required: true
	// default: Work
	Name string `json:"name"`

	// default: Everything for the office
	Description string `json:"description"`
}

// BoardResponse wraps a single board
// swagger:model BoardResponse
type BoardResponse struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message,omitempty" example:"Board created successfully!"`
	Board   *models.BoardDB `json:"board"`
}

// BoardsResponse wraps the board listing
// swagger:model BoardsResponse
type BoardsResponse struct {
	Success bool                  `json:"success" example:"true"`
	Boards  []models.BoardSummary `json:"boards"`
}

// NewCreateBoardHandler returns an HTTP handler creating a board.
// @Summary Create board
// @Tags boards
// @Accept json
// @Produce json
// @Param boardRequest body handlers.BoardRequest true "Board"
// @Success 201 {object} handlers.BoardResponse "Created board"
// @Failure 400 {object} handlers.ErrorResponse "Missing name"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /boards [post]
// @Security BearerAuth
func NewCreateBoardHandler(svc BoardCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req BoardRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		board, err := svc.Create(r.Context(), uid, req.Name, req.Description)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				writeError(w, http.StatusBadRequest, verr.Message)
				return
			}
			writeInternal(w, r, err, "Server error while creating board.")
			return
		}

		writeJSON(w, http.StatusCreated, BoardResponse{
			Success: true,
			Message: "Board created successfully!",
			Board:   board,
		})
	}
}

// NewListBoardsHandler returns an HTTP handler listing the user's boards.
// @Summary List boards
// @Description Newest first, each with its todo and completed todo counts
// @Tags boards
// @Produce json
// @Success 200 {object} handlers.BoardsResponse "Boards"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /boards [get]
// @Security BearerAuth
func NewListBoardsHandler(svc BoardLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		boards, err := svc.List(r.Context(), uid)
		if err != nil {
			writeInternal(w, r, err, "Server error while fetching boards.")
			return
		}

		writeJSON(w, http.StatusOK, BoardsResponse{Success: true, Boards: boards})
	}
}

// NewGetBoardHandler returns an HTTP handler reading one board.
// @Summary Get board
// @Tags boards
// @Produce json
// @Param id path int true "Board ID"
// @Success 200 {object} handlers.BoardResponse "Board"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Board not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /boards/{id} [get]
// @Security BearerAuth
func NewGetBoardHandler(svc BoardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgBoardNotFound)
			return
		}

		board, err := svc.Get(r.Context(), uid, boardID)
		if err != nil {
			if errors.Is(err, services.ErrBoardNotFound) {
				writeError(w, http.StatusNotFound, msgBoardNotFound)
				return
			}
			writeInternal(w, r, err, "Server error while fetching board.")
			return
		}

		writeJSON(w, http.StatusOK, BoardResponse{Success: true, Board: board})
	}
}

// NewUpdateBoardHandler returns an HTTP handler updating a board.
// @Summary Update board
// @Tags boards
// @Accept json
// @Produce json
// @Param id path int true "Board ID"
// @Param boardRequest body handlers.BoardRequest true "Board"
// @Success 200 {object} handlers.BoardResponse "Updated board"
// @Failure 400 {object} handlers.ErrorResponse "Missing name"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Board not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /boards/{id} [put]
// @Security BearerAuth
func NewUpdateBoardHandler(svc BoardUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req BoardRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		boardID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgBoardNotFound)
			return
		}

		board, err := svc.Update(r.Context(), uid, boardID, req.Name, req.Description)
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				writeError(w, http.StatusBadRequest, verr.Message)
			case errors.Is(err, services.ErrBoardNotFound):
				writeError(w, http.StatusNotFound, msgBoardNotFound)
			default:
				writeInternal(w, r, err, "Server error while updating board.")
			}
			return
		}

		writeJSON(w, http.StatusOK, BoardResponse{
			Success: true,
			Message: "Board updated successfully!",
			Board:   board,
		})
	}
}

// NewDeleteBoardHandler returns an HTTP handler deleting a board and its todos.
// @Summary Delete board
// @Tags boards
// @Produce json
// @Param id path int true "Board ID"
// @Success 200 {object} handlers.MessageResponse "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Board not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /boards/{id} [delete]
// @Security BearerAuth
func NewDeleteBoardHandler(svc BoardDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgBoardNotFound)
			return
		}

		if err := svc.Delete(r.Context(), uid, boardID); err != nil {
			if errors.Is(err, services.ErrBoardNotFound) {
				writeError(w, http.StatusNotFound, msgBoardNotFound)
				return
			}
			writeInternal(w, r, err, "Server error while deleting board.")
			return
		}

		writeMessage(w, http.StatusOK, "Board deleted successfully!")
	}
}
