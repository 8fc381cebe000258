package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-todo-boards/internal/services"
)

//go:generate mockgen -source=password.go -destination=password_mock.go -package=handlers

const msgResetLinkSent = "If an account with that email exists, a password reset link has been sent."

// PasswordForgetter starts the password reset flow.
type PasswordForgetter interface {
	ForgotPassword(ctx context.Context, email string) error
}

// PasswordResetter completes the password reset flow.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, token, password string) error
}

// ForgotPasswordRequest represents the JSON body of a reset link request
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// ResetPasswordRequest represents the JSON body of a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Token from the reset link
	// required: true
	Token string `json:"token"`

	// New password, at least 6 characters
	// required: true
	Password string `json:"password"`
}

// NewForgotPasswordHandler returns an HTTP handler mailing a reset link.
// The answer is the same whether or not the account exists.
// @Summary Request password reset
// @Description Mails a reset link valid for 1 hour and revokes earlier links
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Account email"
// @Success 200 {object} handlers.MessageResponse "Generic acknowledgement"
// @Failure 400 {object} handlers.ErrorResponse "Missing email"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/forgot-password [post]
func NewForgotPasswordHandler(svc PasswordForgetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				writeError(w, http.StatusBadRequest, verr.Message)
				return
			}
			writeInternal(w, r, err, "Server error during password reset request.")
			return
		}

		writeMessage(w, http.StatusOK, msgResetLinkSent)
	}
}

// NewResetPasswordHandler returns an HTTP handler setting a new password.
// @Summary Reset password
// @Description Replaces the password of the reset token's owner. The token is single-use.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} handlers.MessageResponse "Password replaced"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input, invalid or expired token"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				writeError(w, http.StatusBadRequest, verr.Message)
			case errors.Is(err, services.ErrInvalidToken):
				writeError(w, http.StatusBadRequest, "Invalid or expired reset token.")
			default:
				writeInternal(w, r, err, "Server error during password reset.")
			}
			return
		}

		writeMessage(w, http.StatusOK, "Password reset successful! You can now log in with your new password.")
	}
}
