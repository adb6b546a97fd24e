package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/portal/internal/api/metrics"
	"github.com/memberhub/portal/internal/core/domain"
	"github.com/memberhub/portal/internal/core/ports"
)

// AdminHandler serves the user listing and the promote/demote actions.
// All routes behind it already passed the auth and admin role gates.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// roleChangeForm targets a username; the field keeps the userId name the
// admin page form posts.
type roleChangeForm struct {
	Username string `form:"userId"`
}

func (h *AdminHandler) AdminPage(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "admin.html", map[string][]domain.User{
		"Users": users,
	})
}

func (h *AdminHandler) Promote(c echo.Context) error {
	var form roleChangeForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}
	if err := h.admin.Promote(c.Request().Context(), form.Username); err != nil {
		return err
	}
	metrics.RoleChangesTotal.WithLabelValues("promote").Inc()
	return c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHandler) Demote(c echo.Context) error {
	var form roleChangeForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}
	if err := h.admin.Demote(c.Request().Context(), form.Username); err != nil {
		return err
	}
	metrics.RoleChangesTotal.WithLabelValues("demote").Inc()
	return c.Redirect(http.StatusSeeOther, "/admin")
}
