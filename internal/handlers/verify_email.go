package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-todo-boards/internal/services"
)

//go:generate mockgen -source=verify_email.go -destination=verify_email_mock.go -package=handlers

// EmailVerifier consumes email verification tokens.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, token string) error
}

// VerifyEmailRequest represents the JSON body for email verification
// swagger:model VerifyEmailRequest
type VerifyEmailRequest struct {
	// Token from the verification link
	// required: true
	Token string `json:"token"`
}

// NewVerifyEmailHandler returns an HTTP handler confirming a user's email.
// @Summary Verify email
// @Description Marks the account as verified. The token is single-use.
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyEmailRequest body handlers.VerifyEmailRequest true "Verification token"
// @Success 200 {object} handlers.MessageResponse "Email verified"
// @Failure 400 {object} handlers.ErrorResponse "Missing, invalid or expired token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/verify-email [post]
func NewVerifyEmailHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyEmailRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err := svc.VerifyEmail(r.Context(), req.Token); err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				writeError(w, http.StatusBadRequest, verr.Message)
			case errors.Is(err, services.ErrInvalidToken):
				writeError(w, http.StatusBadRequest, "Invalid or expired verification token.")
			default:
				writeInternal(w, r, err, "Server error during email verification.")
			}
			return
		}

		writeMessage(w, http.StatusOK, "Email verified successfully! You can now log in.")
	}
}
