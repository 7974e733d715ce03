package book

import "context"

// Repository is the persistence port for books.
type Repository interface {
	// Create inserts a book. Returns ErrBookAlreadyExists on a duplicate
	// title and ErrAuthorDoesNotExist when the author reference is broken.
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns ErrBookNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*Book, error)

	// List returns books matching the filter ordered by id ascending.
	List(ctx context.Context, filter BookFilter) ([]Book, error)

	// Update persists all mutable fields of the given book.
	Update(ctx context.Context, b *Book) (*Book, error)

	// Delete returns ErrBookNotFound when no row matches.
	Delete(ctx context.Context, id int64) error
}
