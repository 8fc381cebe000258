package services

import "errors"

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email is not verified")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrBoardNotFound      = errors.New("board not found")
	ErrBoardForbidden     = errors.New("access to board denied")
	ErrTodoNotFound       = errors.New("todo not found")
	ErrReorderDenied      = errors.New("reorder contains todos not owned by user")
)

// ValidationError reports malformed input. Message is safe to show to the
// client as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
