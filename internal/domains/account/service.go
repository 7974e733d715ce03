package account

import (
	"context"
)

// Service is the business logic contract for accounts and authentication.
type Service interface {
	// Register creates an account from a self-registration request.
	// The password is hashed irreversibly before it reaches the store.
	// Errors: ErrUsernameAlreadyExists, ErrEmailAlreadyExists.
	Register(ctx context.Context, req CreateAccountRequest) (*AccountDTO, error)

	// GetByID fetches one account.
	// Errors: ErrAccountNotFound.
	GetByID(ctx context.Context, id int64) (*AccountDTO, error)

	// List returns a paginated account listing.
	List(ctx context.Context, filter AccountFilter) ([]AccountDTO, error)

	// Update performs a full update of the requester's own account.
	// Errors: ErrNotOwner when requesterID != id, ErrAccountNotFound,
	// ErrUsernameAlreadyExists, ErrEmailAlreadyExists.
	Update(ctx context.Context, id, requesterID int64, req UpdateAccountRequest) (*AccountDTO, error)

	// Delete removes the requester's own account.
	// Errors: ErrNotOwner, ErrAccountNotFound.
	Delete(ctx context.Context, id, requesterID int64) error

	// Login verifies credentials and issues an access/refresh token pair.
	// Errors: ErrInvalidCredentials (undifferentiated on purpose).
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)

	// Refresh validates a refresh token and issues a new access token.
	// The refresh token is not rotated. Errors: the pkg/jwt validation
	// errors, or ErrAccountNotFound when the subject no longer exists.
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
}
