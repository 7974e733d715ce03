package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-backend/internal/domains/author"
	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/logger"
)

// AuthorHandler exposes the author operations over HTTP.
type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Create handles POST /authors/
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/authors/%d", created.ID))
	response.Success(c, http.StatusCreated, created)
}

// List handles GET /authors/
func (h *AuthorHandler) List(c *gin.Context) {
	var filter author.AuthorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}
	filter.SetDefaults()

	authors, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, authors, &response.Meta{
		Offset: filter.Offset,
		Limit:  filter.Limit,
	})
}

// GetByID handles GET /authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// Update handles PATCH /authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Author deleted successfully"})
}

func (h *AuthorHandler) parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.UnprocessableEntity(c, "VALIDATION_ERROR", "Author id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationFailed(c, validationErrs)
		return
	}

	status := author.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("author handler error", err)
		response.InternalServerError(c, "Something went wrong")
		return
	}

	response.ErrorResponse(c, status, author.ToErrorCode(err), err.Error())
}
