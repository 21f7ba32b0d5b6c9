package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// currentUser extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a zero user id means
// the middleware did not run for this route.
func currentUser(c echo.Context) (id uint, email string, err error) {
	id, ok := c.Get("user_id").(uint)
	if !ok || id == 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ = c.Get("email").(string)
	return id, email, nil
}
