package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cesizen/internal/auth"
	"cesizen/internal/service"
)

// RoleHandler handles role administration endpoints.
type RoleHandler struct {
	svc service.RoleService
}

// NewRoleHandler creates a new role handler.
func NewRoleHandler(svc service.RoleService) *RoleHandler {
	return &RoleHandler{svc: svc}
}

// RoleRequest represents a role create/update payload.
type RoleRequest struct {
	RoleName string `json:"roleName" validate:"required"`
}

// CreateRole godoc
// @Summary Create a role (admin)
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RoleRequest true "Role payload"
// @Success 201 {object} model.Role
// @Failure 403 {object} errors.ErrorResponse
// @Router /roles [post]
func (h *RoleHandler) CreateRole(c echo.Context) error {
	var req RoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.svc.Create(c.Request().Context(), req.RoleName, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, role)
}

// ListRoles godoc
// @Summary List roles (admin)
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Role
// @Failure 403 {object} errors.ErrorResponse
// @Router /roles [get]
func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := h.svc.List(c.Request().Context(), auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, roles)
}

// GetRole godoc
// @Summary Get a role by id (admin)
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} model.Role
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/{id} [get]
func (h *RoleHandler) GetRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	role, err := h.svc.GetByID(c.Request().Context(), id, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, role)
}

// UpdateRole godoc
// @Summary Update a role (admin)
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Param request body RoleRequest true "Role payload"
// @Success 200 {object} model.Role
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/{id} [put]
func (h *RoleHandler) UpdateRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req RoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.svc.Update(c.Request().Context(), id, req.RoleName, auth.CurrentPrincipal(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, role)
}

// DeleteRole godoc
// @Summary Delete a role (admin)
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 204 "deleted"
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id, auth.CurrentPrincipal(c)); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
