package book

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound       = errors.New("book not found")
	ErrBookAlreadyExists  = errors.New("book already exists")
	ErrAuthorDoesNotExist = errors.New("referenced author does not exist")
)

// ToErrorCode maps a domain error to a stable machine-readable code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrBookAlreadyExists):
		return "CONFLICT"
	case errors.Is(err, ErrAuthorDoesNotExist):
		return "INVALID_REFERENCE"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// ToHTTPStatus maps a domain error to its HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBookAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrAuthorDoesNotExist):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
