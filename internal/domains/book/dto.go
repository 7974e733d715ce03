package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-backend/internal/shared/utils"
)

// CreateBookRequest - POST /books/
type CreateBookRequest struct {
	Title    string `json:"title"`
	Year     int    `json:"year"`
	AuthorID int64  `json:"author_id"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Year,
			validation.Required.Error("year is required"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
		),
	)
}

// Sanitized returns a copy with the title in canonical stored form.
func (r CreateBookRequest) Sanitized() CreateBookRequest {
	r.Title = utils.SanitizeIn(r.Title)
	return r
}

// UpdateBookRequest - PATCH /books/:id
// Pointer fields so omitted attributes leave the stored values untouched.
type UpdateBookRequest struct {
	Title    *string `json:"title,omitempty"`
	Year     *int    `json:"year,omitempty"`
	AuthorID *int64  `json:"author_id,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title must not be empty"),
			validation.Length(1, 255),
		),
	)
}

func (r UpdateBookRequest) Sanitized() UpdateBookRequest {
	if r.Title != nil {
		title := utils.SanitizeIn(*r.Title)
		r.Title = &title
	}
	return r
}

// BookDTO - public book representation.
type BookDTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Book) ToDTO() BookDTO {
	return BookDTO{
		ID:        b.ID,
		Title:     b.Title,
		Year:      b.Year,
		AuthorID:  b.AuthorID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// BookFilter - query parameters for GET /books/. Title matches as a
// case-insensitive substring; Year matches exactly when present.
type BookFilter struct {
	Title  string `form:"title"`
	Year   *int   `form:"year"`
	Offset int    `form:"offset"`
	Limit  int    `form:"limit"`
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func (f *BookFilter) SetDefaults() {
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
}
