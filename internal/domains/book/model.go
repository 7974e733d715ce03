package book

import "time"

// Book is a catalog entry owned by exactly one author. Titles are
// stored in sanitized lowercase form and unique across the catalog.
type Book struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Year      int       `json:"year" db:"year"`
	AuthorID  int64     `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
