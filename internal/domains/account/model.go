package account

import (
	"time"
)

// Account is the core account entity.
// Password holds only the irreversible hash, never the plaintext,
// and is excluded from JSON marshalling.
type Account struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"` // globally unique, immutable casing via sanitization
	Email    string `json:"email" db:"email"`       // globally unique
	Password string `json:"-" db:"password_hash"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
