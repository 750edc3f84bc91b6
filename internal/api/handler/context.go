package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUsername extracts the authenticated username injected by the Auth
// middleware. The returned value is the exclusive basis for ownership
// filtering — handlers never trust a username from the request body. An
// empty value means the middleware did not run; reject with 401.
func ctxUsername(c echo.Context) (string, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}
