package account

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"catalog-backend/internal/shared/utils"
)

// ========================================
// ACCOUNT DTOs
// ========================================

// CreateAccountRequest - POST /accounts/
type CreateAccountRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r CreateAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(1, 128),
		),
	)
}

// Sanitized returns a copy with the username in canonical form.
func (r CreateAccountRequest) Sanitized() CreateAccountRequest {
	r.Username = utils.SanitizeIn(r.Username)
	return r
}

// UpdateAccountRequest - PUT /accounts/:id
// Full update: every field is required and replaces the stored value.
type UpdateAccountRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r UpdateAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(5, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 128)),
	)
}

func (r UpdateAccountRequest) Sanitized() UpdateAccountRequest {
	r.Username = utils.SanitizeIn(r.Username)
	return r
}

// AccountDTO - public account representation (never carries the hash)
type AccountDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToDTO converts an Account entity to its public representation.
func (a *Account) ToDTO() AccountDTO {
	return AccountDTO{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountFilter - pagination for GET /accounts/
type AccountFilter struct {
	Offset int `form:"offset"`
	Limit  int `form:"limit"`
}

// SetDefaults applies default pagination values.
func (f *AccountFilter) SetDefaults() {
	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// ========================================
// AUTH DTOs
// ========================================

// LoginRequest - POST /auth/token (form-encoded).
// Login accepts either the email or the username in the username field.
type LoginRequest struct {
	Login    string `form:"username"`
	Password string `form:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Login, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// TokenResponse is the fixed wire shape of the token endpoints.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}
