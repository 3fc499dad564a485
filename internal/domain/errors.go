package domain

import "errors"

// Domain errors
var (
	ErrStoryNotFound = errors.New("story not found")
	ErrAccessDenied  = errors.New("access denied")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidFile   = errors.New("invalid file")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
