package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-todo-boards/internal/models"
	"github.com/sbilibin2017/gw-todo-boards/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	Success bool `json:"success" example:"true"`

	// default: Login successful!
	Message string `json:"message"`

	// Bearer token for the Authorization header
	// default: JWT_TOKEN
	Token string `json:"token"`

	User *models.User `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a verified user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Bearer token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 403 {object} handlers.ErrorResponse "Email not verified"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				writeError(w, http.StatusBadRequest, verr.Message)
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password.")
			case errors.Is(err, services.ErrEmailNotVerified):
				writeError(w, http.StatusForbidden, "Please verify your email before logging in.")
			default:
				writeInternal(w, r, err, "Server error during login.")
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Success: true,
			Message: "Login successful!",
			Token:   token,
			User:    user,
		})
	}
}
