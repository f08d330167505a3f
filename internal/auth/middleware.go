package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"cesizen/internal/repository"
)

const principalContextKey = "principal"

// LoadPrincipal resolves the authenticated caller from the token the
// echo-jwt middleware stored on the context. The role is re-read from the
// database rather than trusted from the token, so a role change takes
// effect on the next request.
func LoadPrincipal(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			userID, ok := claims["user_id"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := userRepo.FindByID(c.Request().Context(), uint(userID))
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "user not found")
			}

			c.Set(principalContextKey, &Principal{
				UserID:   user.ID,
				Email:    user.Email,
				RoleName: user.RoleName(),
			})
			return next(c)
		}
	}
}

// CurrentPrincipal returns the principal attached by LoadPrincipal, or
// nil on an unauthenticated route.
func CurrentPrincipal(c echo.Context) *Principal {
	p, _ := c.Get(principalContextKey).(*Principal)
	return p
}
