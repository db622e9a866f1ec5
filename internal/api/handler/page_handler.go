package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/taskboard/taskboard/internal/api/middleware"
)

// PageHandler serves the non-core informational routes: the landing payload
// and the about page. Rendering is left to the client; these endpoints only
// report who is logged in.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

type homeResponse struct {
	Title    string `json:"title"`
	Username string `json:"username,omitempty"`
}

// Home handles GET /. Behind OptionalUser middleware: an authenticated
// visitor sees their username, everyone else gets the login title.
func (h *PageHandler) Home(c echo.Context) error {
	if username, ok := c.Get(apimiddleware.CtxUsername).(string); ok && username != "" {
		return c.JSON(http.StatusOK, homeResponse{Title: "Inicio", Username: username})
	}
	return c.JSON(http.StatusOK, homeResponse{Title: "Login"})
}

// About handles GET /about.
func (h *PageHandler) About(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"about": "Multi-user task list service.",
	})
}
