package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-backend/internal/shared/utils"
)

// CreateAuthorRequest - POST /authors/
type CreateAuthorRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
	)
}

// Sanitized returns a copy with the name in canonical stored form.
func (r CreateAuthorRequest) Sanitized() CreateAuthorRequest {
	r.Name = utils.SanitizeIn(r.Name)
	return r
}

// UpdateAuthorRequest - PATCH /authors/:id
// Pointer field so an omitted name leaves the stored value untouched.
type UpdateAuthorRequest struct {
	Name *string `json:"name,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name must not be empty"),
			validation.Length(1, 255),
		),
	)
}

func (r UpdateAuthorRequest) Sanitized() UpdateAuthorRequest {
	if r.Name != nil {
		name := utils.SanitizeIn(*r.Name)
		r.Name = &name
	}
	return r
}

// AuthorDTO - public author representation. Name is title-cased for
// display; the stored form stays sanitized lowercase.
type AuthorDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToDTO converts an Author entity to its public representation.
func (a *Author) ToDTO() AuthorDTO {
	return AuthorDTO{
		ID:        a.ID,
		Name:      utils.SanitizeOut(a.Name),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AuthorFilter - query parameters for GET /authors/
type AuthorFilter struct {
	Name   string `form:"name"` // case-insensitive substring match
	Offset int    `form:"offset"`
	Limit  int    `form:"limit"`
}

// SetDefaults applies default pagination values.
func (f *AuthorFilter) SetDefaults() {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
