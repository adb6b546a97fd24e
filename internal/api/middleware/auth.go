package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/portal/internal/api/metrics"
)

// Authenticated admits requests carrying a valid (authenticated, unexpired)
// session and redirects everything else to the landing page. The redirect
// carries no error payload; an expired session and no session look the same.
func Authenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !SessionFromContext(c).IsValid(time.Now()) {
				metrics.GateDenialsTotal.WithLabelValues("auth").Inc()
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}
