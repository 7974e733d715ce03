package author

import "errors"

var (
	ErrAuthorNotFound      = errors.New("author not found")
	ErrAuthorAlreadyExists = errors.New("author already exists")
)

// ToErrorCode converts a domain error to its stable API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrAuthorAlreadyExists):
		return "CONFLICT"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// ToHTTPStatus converts a domain error to its HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrAuthorAlreadyExists):
		return 409
	default:
		return 500
	}
}
