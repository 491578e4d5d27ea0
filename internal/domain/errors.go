package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail indicates an account with this email already exists.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrRateLimited indicates too many requests from one address in the window.
	ErrRateLimited = errors.New("too many requests")
	// ErrStoreUnavailable indicates the persistent backing store is unreachable.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError carries a user-correctable message. The message is safe to
// surface verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
