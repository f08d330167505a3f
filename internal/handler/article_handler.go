package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cesizen/internal/auth"
	"cesizen/internal/service"
)

// ArticleHandler handles wellness article endpoints.
type ArticleHandler struct {
	svc service.ArticleService
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(svc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// CreateArticleRequest represents a new article payload.
type CreateArticleRequest struct {
	Title      string `json:"title" validate:"required,min=1"`
	Content    string `json:"content" validate:"required,min=1"`
	Image      string `json:"image"`
	CategoryID uint   `json:"categoryId" validate:"required"`
}

// UpdateArticleRequest represents a partial article edit.
type UpdateArticleRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Image      *string `json:"image"`
	CategoryID *uint   `json:"categoryId"`
}

// CreateArticle godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateArticleRequest true "Article payload"
// @Success 201 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	var req CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.svc.Create(c.Request().Context(), service.CreateArticleInput{
		Title:      req.Title,
		Content:    req.Content,
		Image:      req.Image,
		CategoryID: req.CategoryID,
	}, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, article)
}

// ListArticles godoc
// @Summary List all articles with their categories
// @Tags articles
// @Produce json
// @Success 200 {array} model.Article
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	articles, err := h.svc.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, articles)
}

// GetArticle godoc
// @Summary Get an article by id
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} model.Article
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	article, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, article)
}

// ListArticlesByCategory godoc
// @Summary List articles of a category
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param categoryId path int true "Category ID"
// @Success 200 {array} model.Article
// @Failure 403 {object} errors.ErrorResponse
// @Router /articles/category/{categoryId} [get]
func (h *ArticleHandler) ListArticlesByCategory(c echo.Context) error {
	categoryID, err := pathID(c, "categoryId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category id")
	}
	articles, err := h.svc.ListByCategory(c.Request().Context(), categoryID, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, articles)
}

// UpdateArticle godoc
// @Summary Update an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body UpdateArticleRequest true "Partial article payload"
// @Success 200 {object} model.Article
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.svc.Update(c.Request().Context(), id, service.UpdateArticleInput{
		Title:      req.Title,
		Content:    req.Content,
		Image:      req.Image,
		CategoryID: req.CategoryID,
	}, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary Delete an article (admin)
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 204 "deleted"
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id, auth.CurrentPrincipal(c)); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
