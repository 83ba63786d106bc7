package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// callerIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both values must be
// non-empty (presence proves the middleware ran).
func callerIdentity(c echo.Context) (userID, sessionID string, err error) {
	userID, _ = c.Get("user_id").(string)
	sessionID, _ = c.Get("session_id").(string)
	if userID == "" || sessionID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, sessionID, nil
}
