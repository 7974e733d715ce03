package account

import "errors"

// Repository-level errors
var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
)

// Service-level (business logic) errors
var (
	// ErrNotOwner: valid identity, but the requester does not own the account.
	ErrNotOwner = errors.New("not enough permissions")

	// ErrInvalidCredentials is deliberately undifferentiated: it does not
	// reveal whether the login or the password was wrong.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// ToErrorCode converts a domain error to its stable API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrUsernameAlreadyExists), errors.Is(err, ErrEmailAlreadyExists):
		return "CONFLICT"
	case errors.Is(err, ErrNotOwner):
		return "FORBIDDEN"
	case errors.Is(err, ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// ToHTTPStatus converts a domain error to its HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return 404
	case errors.Is(err, ErrUsernameAlreadyExists), errors.Is(err, ErrEmailAlreadyExists):
		return 409
	case errors.Is(err, ErrNotOwner):
		return 403
	case errors.Is(err, ErrInvalidCredentials):
		return 400
	default:
		return 500
	}
}
