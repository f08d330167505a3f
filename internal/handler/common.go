package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "cesizen/internal/errors"
)

// domainError maps a service error onto an echo HTTP error with the
// standard response body.
func domainError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// pathID parses the named path parameter as an unsigned id.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
