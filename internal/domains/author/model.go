package author

import (
	"time"
)

// Author is the core author entity. An author owns a collection of
// books (one-to-many); the books side holds the foreign key.
type Author struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"` // globally unique, stored in sanitized form

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
