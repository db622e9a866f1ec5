package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/taskboard/taskboard/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the session
// middleware and performs a fast-fail check before any service call: a zero
// id means the middleware did not run on this route, which is a wiring bug,
// not a client error — the client still only sees 401.
func ctxUserID(c echo.Context) (int64, error) {
	id, _ := c.Get(apimiddleware.CtxUserID).(int64)
	if id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return id, nil
}
