package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: all three values are set together by
// the middleware, so an absent one means the route is miswired.
func ctxIdentity(c echo.Context) (username, role, sessionID string, err error) {
	username, _ = c.Get("username").(string)
	role, _ = c.Get("role").(string)
	sessionID, _ = c.Get("session_id").(string)
	if username == "" || role == "" || sessionID == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, role, sessionID, nil
}
