package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-todo-boards/internal/models"
	"github.com/sbilibin2017/gw-todo-boards/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockBoardReader(ctrl)
	writer := services.NewMockBoardWriter(ctrl)
	svc := services.NewBoardService(reader, writer)
	ctx := context.Background()

	t.Run("name is trimmed", func(t *testing.T) {
		board := &models.BoardDB{ID: 1, UserID: 9, Name: "Work"}
		writer.EXPECT().Create(gomock.Any(), int64(9), "Work", "").Return(board, nil)

		got, err := svc.Create(ctx, 9, "  Work ", "")
		require.NoError(t, err)
		assert.Equal(t, board, got)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.Create(ctx, 9, "   ", "desc")
		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Board name is required.", verr.Message)
	})

	t.Run("store error", func(t *testing.T) {
		dbErr := errors.New("db error")
		writer.EXPECT().Create(gomock.Any(), int64(9), "Work", "").Return(nil, dbErr)

		_, err := svc.Create(ctx, 9, "Work", "")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestBoardService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockBoardReader(ctrl)
	svc := services.NewBoardService(reader, services.NewMockBoardWriter(ctrl))

	boards := []models.BoardSummary{
		{BoardDB: models.BoardDB{ID: 2, Name: "New"}, TodoCount: 0},
		{BoardDB: models.BoardDB{ID: 1, Name: "Old"}, TodoCount: 3, CompletedCount: 1},
	}
	reader.EXPECT().ListByUser(gomock.Any(), int64(9)).Return(boards, nil)

	got, err := svc.List(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, boards, got)
}

func TestBoardService_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockBoardReader(ctrl)
	writer := services.NewMockBoardWriter(ctrl)
	svc := services.NewBoardService(reader, writer)
	ctx := context.Background()

	reader.EXPECT().GetByID(gomock.Any(), int64(9), int64(5)).Return(nil, nil)
	_, err := svc.Get(ctx, 9, 5)
	assert.ErrorIs(t, err, services.ErrBoardNotFound)

	writer.EXPECT().Update(gomock.Any(), int64(9), int64(5), "Name", "").Return(nil, nil)
	_, err = svc.Update(ctx, 9, 5, "Name", "")
	assert.ErrorIs(t, err, services.ErrBoardNotFound)

	writer.EXPECT().Delete(gomock.Any(), int64(9), int64(5)).Return(false, nil)
	assert.ErrorIs(t, svc.Delete(ctx, 9, 5), services.ErrBoardNotFound)
}

func TestBoardService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockBoardReader(ctrl)
	writer := services.NewMockBoardWriter(ctrl)
	svc := services.NewBoardService(reader, writer)
	ctx := context.Background()

	updated := &models.BoardDB{ID: 5, UserID: 9, Name: "Home", Description: "chores"}
	writer.EXPECT().Update(gomock.Any(), int64(9), int64(5), "Home", "chores").Return(updated, nil)

	got, err := svc.Update(ctx, 9, 5, " Home", "chores")
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = svc.Update(ctx, 9, 5, "", "chores")
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)

	writer.EXPECT().Delete(gomock.Any(), int64(9), int64(5)).Return(true, nil)
	assert.NoError(t, svc.Delete(ctx, 9, 5))
}
