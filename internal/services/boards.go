package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-todo-boards/internal/logger"
	"github.com/sbilibin2017/gw-todo-boards/internal/models"
)

//go:generate mockgen -source=boards.go -destination=boards_mock.go -package=services

// BoardReader defines owner-scoped reads of boards.
type BoardReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.BoardSummary, error)
	GetByID(ctx context.Context, userID, boardID int64) (*models.BoardDB, error)
}

// BoardWriter defines owner-scoped writes of boards.
type BoardWriter interface {
	Create(ctx context.Context, userID int64, name, description string) (*models.BoardDB, error)
	Update(ctx context.Context, userID, boardID int64, name, description string) (*models.BoardDB, error)
	Delete(ctx context.Context, userID, boardID int64) (bool, error)
}

// BoardService manages the boards of a user. A board owned by someone
// else is reported exactly like a missing one.
type BoardService struct {
	reader BoardReader
	writer BoardWriter
}

// NewBoardService creates a new BoardService instance.
func NewBoardService(reader BoardReader, writer BoardWriter) *BoardService {
	return &BoardService{
		reader: reader,
		writer: writer,
	}
}

// Create adds a board for userID.
func (svc *BoardService) Create(ctx context.Context, userID int64, name, description string) (*models.BoardDB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("Board name is required.")
	}

	board, err := svc.writer.Create(ctx, userID, name, description)
	if err != nil {
		logger.Log.Errorw("failed to create board", "user_id", userID, "err", err)
		return nil, err
	}
	return board, nil
}

// List returns every board of userID, newest first, with todo counters.
func (svc *BoardService) List(ctx context.Context, userID int64) ([]models.BoardSummary, error) {
	boards, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list boards", "user_id", userID, "err", err)
		return nil, err
	}
	return boards, nil
}

// Get returns one board of userID.
func (svc *BoardService) Get(ctx context.Context, userID, boardID int64) (*models.BoardDB, error) {
	board, err := svc.reader.GetByID(ctx, userID, boardID)
	if err != nil {
		logger.Log.Errorw("failed to get board", "user_id", userID, "board_id", boardID, "err", err)
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}
	return board, nil
}

// Update renames a board of userID and replaces its description.
func (svc *BoardService) Update(ctx context.Context, userID, boardID int64, name, description string) (*models.BoardDB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("Board name is required.")
	}

	board, err := svc.writer.Update(ctx, userID, boardID, name, description)
	if err != nil {
		logger.Log.Errorw("failed to update board", "user_id", userID, "board_id", boardID, "err", err)
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}
	return board, nil
}

// Delete removes a board of userID together with its todos.
func (svc *BoardService) Delete(ctx context.Context, userID, boardID int64) error {
	deleted, err := svc.writer.Delete(ctx, userID, boardID)
	if err != nil {
		logger.Log.Errorw("failed to delete board", "user_id", userID, "board_id", boardID, "err", err)
		return err
	}
	if !deleted {
		return ErrBoardNotFound
	}
	return nil
}
