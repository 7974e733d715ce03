package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/logger"
)

// BookHandler exposes the book operations over HTTP.
type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// Create handles POST /books/
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/books/%d", created.ID))
	response.Success(c, http.StatusCreated, created)
}

// List handles GET /books/
func (h *BookHandler) List(c *gin.Context) {
	var filter book.BookFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}
	filter.SetDefaults()

	books, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{
		Offset: filter.Offset,
		Limit:  filter.Limit,
	})
}

// GetByID handles GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Update handles PATCH /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req book.UpdateBookRequest
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

// Delete handles DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

func (h *BookHandler) parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.UnprocessableEntity(c, "VALIDATION_ERROR", "Book id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationFailed(c, validationErrs)
		return
	}

	status := book.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("book handler error", err)
		response.InternalServerError(c, "Something went wrong")
		return
	}

	response.ErrorResponse(c, status, book.ToErrorCode(err), err.Error())
}
