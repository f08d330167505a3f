package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cesizen/internal/auth"
	"cesizen/internal/service"
)

// QuestionHandler handles stress-question endpoints.
type QuestionHandler struct {
	svc service.QuestionService
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(svc service.QuestionService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

// QuestionRequest represents a question create/update payload.
type QuestionRequest struct {
	Question string `json:"question" validate:"required"`
	Score    int    `json:"score" validate:"required"`
}

// CreateQuestion godoc
// @Summary Create a stress question (admin)
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body QuestionRequest true "Question payload"
// @Success 201 {object} model.Question
// @Failure 403 {object} errors.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	question, err := h.svc.Create(c.Request().Context(), service.QuestionInput{
		Question: req.Question,
		Score:    req.Score,
	}, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, question)
}

// ListQuestions godoc
// @Summary List stress questions
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Question
// @Failure 403 {object} errors.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	questions, err := h.svc.List(c.Request().Context(), auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary Get a stress question by id
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} model.Question
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	question, err := h.svc.GetByID(c.Request().Context(), id, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary Update a stress question (admin)
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body QuestionRequest true "Question payload"
// @Success 200 {object} model.Question
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	question, err := h.svc.Update(c.Request().Context(), id, service.QuestionInput{
		Question: req.Question,
		Score:    req.Score,
	}, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a stress question (admin)
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 204 "deleted"
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id, auth.CurrentPrincipal(c)); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
