package account

import (
	"context"
)

// Repository is the data access contract for accounts (the credential store).
// Uniqueness of username and email is enforced at this boundary: the
// constraint check and the write happen in one transaction, so two
// concurrent creators of the same username cannot both succeed.
type Repository interface {
	// Create inserts a new account.
	// Errors: ErrUsernameAlreadyExists, ErrEmailAlreadyExists.
	Create(ctx context.Context, a *Account) (*Account, error)

	// GetByID retrieves an account by id.
	// Errors: ErrAccountNotFound.
	GetByID(ctx context.Context, id int64) (*Account, error)

	// GetByLogin retrieves an account by email or username.
	// Errors: ErrAccountNotFound.
	GetByLogin(ctx context.Context, login string) (*Account, error)

	// List returns accounts ordered by id ascending, paginated.
	List(ctx context.Context, filter AccountFilter) ([]Account, error)

	// Update replaces username, email and password hash.
	// updated_at is bumped by the store, never client-supplied.
	// Errors: ErrAccountNotFound, ErrUsernameAlreadyExists, ErrEmailAlreadyExists.
	Update(ctx context.Context, a *Account) (*Account, error)

	// Delete removes the account. Deleting an account never cascades
	// to authors or books.
	// Errors: ErrAccountNotFound.
	Delete(ctx context.Context, id int64) error

	// ExistsByID reports whether the account exists. Used by the auth
	// gate to resolve token subjects without fetching the full row.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
