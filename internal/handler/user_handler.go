package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cesizen/internal/auth"
	"cesizen/internal/service"
)

// UserHandler handles account administration endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents an admin account creation request. A
// roleId field is accepted for payload compatibility but never honored.
type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	Activated bool   `json:"activated"`
	RoleID    uint   `json:"roleId"`
}

// UpdateUserRequest represents a partial admin edit.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Username  *string `json:"username"`
	Activated *bool   `json:"activated"`
	RoleID    *uint   `json:"roleId"`
}

// CreateUser godoc
// @Summary Create an account (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "User payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Create(c.Request().Context(), service.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		Activated: req.Activated,
	}, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// ListUsers godoc
// @Summary List accounts (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context(), auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get an account by id (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	user, err := h.svc.GetByID(c.Request().Context(), id, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update an account (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Partial user payload"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Update(c.Request().Context(), id, service.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Activated: req.Activated,
		RoleID:    req.RoleID,
	}, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete an account (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "deleted"
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id, auth.CurrentPrincipal(c)); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeactivateUser godoc
// @Summary Deactivate an account (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/desactivate [put]
func (h *UserHandler) DeactivateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Deactivate(c.Request().Context(), id, auth.CurrentPrincipal(c)); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deactivated"})
}

// ReactivateUser godoc
// @Summary Reactivate an account (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/reactivate [put]
func (h *UserHandler) ReactivateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Reactivate(c.Request().Context(), id, auth.CurrentPrincipal(c)); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user reactivated"})
}

// GetUserIDByUsername godoc
// @Summary Resolve a username to an id
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} map[string]uint
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/username/{username} [get]
func (h *UserHandler) GetUserIDByUsername(c echo.Context) error {
	id, err := h.svc.FindIDByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id})
}

// GetUsernameByUserID godoc
// @Summary Resolve an id to a username
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/usernameid/{id} [get]
func (h *UserHandler) GetUsernameByUserID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	username, err := h.svc.FindUsernameByID(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"username": username})
}
