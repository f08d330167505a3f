package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cesizen/internal/auth"
	"cesizen/internal/service"
	"cesizen/internal/stress"
)

// StressHandler evaluates a stress questionnaire selection against the
// question reference set.
type StressHandler struct {
	questions service.QuestionService
}

// NewStressHandler creates a new stress handler.
func NewStressHandler(questions service.QuestionService) *StressHandler {
	return &StressHandler{questions: questions}
}

// EvaluateRequest carries the ids of the checked questionnaire items.
type EvaluateRequest struct {
	QuestionIDs []uint `json:"questionIds" validate:"required"`
}

// Evaluate godoc
// @Summary Score a stress questionnaire selection
// @Tags stress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EvaluateRequest true "Checked question ids"
// @Success 200 {object} stress.Result
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /stress/evaluate [post]
func (h *StressHandler) Evaluate(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	questions, err := h.questions.List(c.Request().Context(), auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}

	total := stress.Score(questions, req.QuestionIDs)
	return c.JSON(http.StatusOK, stress.Evaluate(total))
}
