package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cesizen/internal/auth"
	"cesizen/internal/service"
)

// CategoryHandler handles article category endpoints.
type CategoryHandler struct {
	svc service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// CategoryRequest represents a category create/update payload.
type CategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required,min=1"`
}

// CreateCategory godoc
// @Summary Create a category (admin)
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category payload"
// @Success 201 {object} model.Category
// @Failure 403 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.svc.Create(c.Request().Context(), req.CategoryName, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

// ListCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Category
// @Failure 403 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.svc.List(c.Request().Context(), auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} model.Category
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	category, err := h.svc.GetByID(c.Request().Context(), id, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, category)
}

// UpdateCategory godoc
// @Summary Update a category (admin)
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category payload"
// @Success 200 {object} model.Category
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.svc.Update(c.Request().Context(), id, req.CategoryName, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category (admin)
// @Description Fails with 409 while articles still reference the category.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204 "deleted"
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id, auth.CurrentPrincipal(c)); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
