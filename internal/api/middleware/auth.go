package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/northstar/goals-api/internal/core/ports"
)

// Auth validates the bearer token and resolves its subject against the user
// store, injecting the caller's identity into the Echo context. A token whose
// subject no longer exists is rejected, so deleting an account immediately
// invalidates its outstanding tokens. All failure modes return the same
// unauthorized response.
func Auth(tokens ports.TokenService, users ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := tokens.Validate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.CurrentUser(c.Request().Context(), subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", user.ID)
			c.Set("email", user.Email)

			return next(c)
		}
	}
}
