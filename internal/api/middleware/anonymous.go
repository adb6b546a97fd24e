package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Anonymous redirects requests that already carry a valid session to the
// members area, keeping logged-in clients out of the signup and login forms.
func Anonymous() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionFromContext(c).IsValid(time.Now()) {
				return c.Redirect(http.StatusFound, "/members")
			}
			return next(c)
		}
	}
}
