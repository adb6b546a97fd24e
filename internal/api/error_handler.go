package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that renders the
// dedicated not-found page for unmatched routes, keeps client-error statuses
// from the router, and collapses everything else into a generic error page.
// Internal causes are logged, never shown to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}

		if code >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
		}

		page := "error.html"
		if code == http.StatusNotFound {
			page = "404.html"
		}
		if renderErr := c.Render(code, page, nil); renderErr != nil {
			log.Error().Err(renderErr).Msg("render error page")
			_ = c.NoContent(code)
		}
	}
}
