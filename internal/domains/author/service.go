package author

import (
	"context"
)

// Service is the business logic contract for the author side of the
// catalog. All operations require an authenticated caller; ownership
// is not per-account (every authenticated user has identical rights).
type Service interface {
	// Create adds an author. The name is sanitized before storage so
	// uniqueness is checked on the canonical form.
	// Errors: ErrAuthorAlreadyExists.
	Create(ctx context.Context, req CreateAuthorRequest) (*AuthorDTO, error)

	// GetByID fetches one author.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id int64) (*AuthorDTO, error)

	// List returns authors filtered and paginated.
	List(ctx context.Context, filter AuthorFilter) ([]AuthorDTO, error)

	// Update applies a partial update (name only).
	// Errors: ErrAuthorNotFound, ErrAuthorAlreadyExists.
	Update(ctx context.Context, id int64, req UpdateAuthorRequest) (*AuthorDTO, error)

	// Delete removes an author together with all of the author's books.
	// Errors: ErrAuthorNotFound.
	Delete(ctx context.Context, id int64) error
}
