package book

import "context"

// AuthorChecker validates author references without importing the
// author domain's full repository surface.
type AuthorChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// Service is the business-logic port for books. Titles are sanitized
// before validation and storage.
type Service interface {
	Create(ctx context.Context, req CreateBookRequest) (*BookDTO, error)
	GetByID(ctx context.Context, id int64) (*BookDTO, error)
	List(ctx context.Context, filter BookFilter) ([]BookDTO, error)

	// Update applies the non-nil fields of req. Changing author_id to a
	// missing author fails with ErrAuthorDoesNotExist.
	Update(ctx context.Context, id int64, req UpdateBookRequest) (*BookDTO, error)

	Delete(ctx context.Context, id int64) error
}
