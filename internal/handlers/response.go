package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-todo-boards/internal/jwt"
	"github.com/sbilibin2017/gw-todo-boards/internal/logger"
	"github.com/sbilibin2017/gw-todo-boards/internal/middlewares"
)

const msgInvalidBody = "Invalid request body."

// MessageResponse is the body of responses that carry only a message.
// swagger:model MessageResponse
type MessageResponse struct {
	// Whether the operation succeeded
	Success bool `json:"success" example:"true"`

	// Human readable outcome
	Message string `json:"message,omitempty" example:"Operation completed successfully!"`
}

// ErrorResponse represents any failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	Success bool `json:"success" example:"false"`

	// Error message safe to show to the user
	Message string `json:"message" example:"Server error."`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Message: message})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Success: true, Message: message})
}

// writeInternal logs err and answers 500 with a generic message.
func writeInternal(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger.Log.Errorw("internal server error",
		"method", r.Method,
		"uri", r.RequestURI,
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, message)
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// userID returns the id of the authenticated user. Routes serving it are
// mounted behind the auth middleware, so a missing identity is answered
// as unauthorized.
func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	claims := jwt.ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return 0, false
	}
	return claims.UserID, true
}

// pathID parses a positive numeric path parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
