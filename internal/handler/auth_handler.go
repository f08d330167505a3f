package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cesizen/internal/auth"
	"cesizen/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a self-registration request.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents a password change request.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=6"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	User        interface{} `json:"user"`
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Authenticate and obtain a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		User: echo.Map{
			"id":        user.ID,
			"email":     user.Email,
			"username":  user.Username,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"roleId":    user.RoleID,
			"roleName":  user.RoleName(),
			"activated": user.Activated,
		},
	})
}

// Me godoc
// @Summary Get the authenticated account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	principal := auth.CurrentPrincipal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), principal.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword godoc
// @Summary Change the authenticated account's password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/change-password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	principal := auth.CurrentPrincipal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), principal.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "password updated successfully",
	})
}
