package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-todo-boards/internal/models"
	"github.com/sbilibin2017/gw-todo-boards/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockCurrentUserGetter(ctrl)
	handler := NewMeHandler(mockSvc)

	t.Run("success", func(t *testing.T) {
		user := &models.User{ID: 7, Email: "me@x.com", IsVerified: true}
		mockSvc.EXPECT().GetCurrentUser(gomock.Any(), int64(7)).Return(user, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, asUser(newRequest(t, http.MethodGet, "/api/auth/me", nil), 7))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, MeResponse{Success: true, User: user}, decodeBody[MeResponse](t, w))
	})

	t.Run("no identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newRequest(t, http.MethodGet, "/api/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("user gone", func(t *testing.T) {
		mockSvc.EXPECT().GetCurrentUser(gomock.Any(), int64(7)).Return(nil, services.ErrUserNotFound)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, asUser(newRequest(t, http.MethodGet, "/api/auth/me", nil), 7))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, decodeBody[ErrorResponse](t, w).Success)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().GetCurrentUser(gomock.Any(), int64(7)).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, asUser(newRequest(t, http.MethodGet, "/api/auth/me", nil), 7))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, ErrorResponse{Message: "Server error."}, decodeBody[ErrorResponse](t, w))
	})
}
