package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-todo-boards/internal/models"
	"github.com/sbilibin2017/gw-todo-boards/internal/services"
)

//go:generate mockgen -source=me.go -destination=me_mock.go -package=handlers

// CurrentUserGetter loads the authenticated user.
type CurrentUserGetter interface {
	GetCurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

// MeResponse represents the authenticated user
// swagger:model MeResponse
type MeResponse struct {
	Success bool         `json:"success" example:"true"`
	User    *models.User `json:"user"`
}

// NewMeHandler returns an HTTP handler describing the current user.
// @Summary Current user
// @Description Returns the public fields of the user owning the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		user, err := svc.GetCurrentUser(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusUnauthorized, "Invalid token. User not found.")
				return
			}
			writeInternal(w, r, err, "Server error.")
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{Success: true, User: user})
	}
}
