package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/portal/internal/api/middleware"
)

// PageHandler serves the plain pages that carry no form logic.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

func (h *PageHandler) Members(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	return c.Render(http.StatusOK, "members.html", map[string]string{
		"Username": session.Username,
	})
}

func (h *PageHandler) NotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "404.html", nil)
}
