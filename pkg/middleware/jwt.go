package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/menuqr/menuqr/pkg/auth"
)

// Context keys set by the JWT middleware
const (
	ContextUserID     = "user_id"
	ContextBusinessID = "business_id"
	ContextRole       = "role"
)

// JWT returns middleware that requires a valid bearer token and puts the
// staff identity on the request context
func JWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := auth.ValidateJWT(token, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextBusinessID, claims.BusinessID)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}

// RequireRole returns middleware allowing only the listed staff roles.
// Owners always pass.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if role == "owner" {
				return next(c)
			}
			for _, r := range roles {
				if role == r {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}

// BusinessID returns the authenticated staff member's business id
func BusinessID(c echo.Context) int {
	id, _ := c.Get(ContextBusinessID).(int)
	return id
}
