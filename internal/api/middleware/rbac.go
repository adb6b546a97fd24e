package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/portal/internal/api/metrics"
)

// Role admits requests whose session carries the required role and answers
// everything else with a rendered forbidden page. This is a 403, never a
// redirect: the client is logged in, just not privileged enough.
//
// The role checked is the one captured in the session at authentication
// time; the user store is not consulted here.
func Role(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionFromContext(c).Role != required {
				metrics.GateDenialsTotal.WithLabelValues("role").Inc()
				return c.Render(http.StatusForbidden, "403.html", nil)
			}
			return next(c)
		}
	}
}
