package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-backend/internal/domains/account"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/jwt"
	"catalog-backend/pkg/logger"
)

// AccountHandler serves the account CRUD surface and the auth endpoints
// (login and token refresh). Stateless; only holds dependencies.
type AccountHandler struct {
	service account.Service
}

// NewAccountHandler creates the handler instance.
func NewAccountHandler(service account.Service) *AccountHandler {
	return &AccountHandler{service: service}
}

// ========================================
// ACCOUNT ENDPOINTS
// ========================================

// Create handles POST /accounts/ — self-registration, no auth required.
func (h *AccountHandler) Create(c *gin.Context) {
	var req account.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	dto, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/accounts/"+strconv.FormatInt(dto.ID, 10))
	response.Success(c, http.StatusCreated, dto)
}

// List handles GET /accounts/ — paginated listing.
func (h *AccountHandler) List(c *gin.Context) {
	var filter account.AccountFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}
	filter.SetDefaults()

	accounts, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"accounts": accounts}, &response.Meta{
		Offset: filter.Offset,
		Limit:  filter.Limit,
	})
}

// GetByID handles GET /accounts/:id.
func (h *AccountHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// Update handles PUT /accounts/:id — full update, owner-only.
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requesterID, ok := middleware.CurrentAccountID(c)
	if !ok {
		response.Unauthorized(c, "could not validate credentials")
		return
	}

	var req account.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, requesterID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// Delete handles DELETE /accounts/:id — owner-only.
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requesterID, ok := middleware.CurrentAccountID(c)
	if !ok {
		response.Unauthorized(c, "could not validate credentials")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, requesterID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

// ========================================
// AUTH ENDPOINTS
// ========================================

// Login handles POST /auth/token. Credentials arrive form-encoded; the
// username field carries either the email or the username. The response
// is the fixed token record, not the shared envelope.
func (h *AccountHandler) Login(c *gin.Context) {
	req := account.LoginRequest{
		Login:    c.PostForm("username"),
		Password: c.PostForm("password"),
	}

	tokens, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// RefreshToken handles POST /auth/refresh/token. The refresh token is
// presented as a bearer token; a new access token is returned and the
// refresh token stays valid (no rotation).
func (h *AccountHandler) RefreshToken(c *gin.Context) {
	token := middleware.ExtractBearerToken(c)
	if token == "" {
		response.Unauthorized(c, "could not validate credentials")
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), token)
	if err != nil {
		// A vanished subject reads the same as a bad token.
		if errors.Is(err, account.ErrAccountNotFound) {
			response.Unauthorized(c, "could not validate credentials")
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// ========================================
// HELPERS
// ========================================

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationFailed(c, gin.H{"id": "must be an integer"})
		return 0, false
	}
	return id, true
}

// handleError maps domain and token errors onto HTTP responses.
func (h *AccountHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationFailed(c, verrs)
		return
	}

	if errors.Is(err, jwt.ErrExpiredToken) ||
		errors.Is(err, jwt.ErrMalformedToken) ||
		errors.Is(err, jwt.ErrWrongTokenType) {
		response.Unauthorized(c, "could not validate credentials")
		return
	}

	status := account.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("account handler: unexpected error", err)
		response.InternalServerError(c, "internal server error")
		return
	}

	response.ErrorResponse(c, status, account.ToErrorCode(err), err.Error())
}
