package author

import (
	"context"
)

// Repository is the data access contract for authors.
// Name uniqueness is enforced at this boundary inside the write
// transaction, not just at the API edge.
type Repository interface {
	// Create inserts a new author.
	// Errors: ErrAuthorAlreadyExists on duplicate name.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID retrieves an author by id.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// List returns authors ordered by id ascending. The name filter,
	// when present, is a case-insensitive substring match.
	List(ctx context.Context, filter AuthorFilter) ([]Author, error)

	// Update renames an author; updated_at is bumped by the store.
	// Errors: ErrAuthorNotFound, ErrAuthorAlreadyExists.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes an author and, in the same transaction, every
	// book the author owns.
	// Errors: ErrAuthorNotFound.
	Delete(ctx context.Context, id int64) error

	// ExistsByID reports whether the author exists. Used by the book
	// domain for reference validation.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
