package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/memberhub/portal/internal/core/domain"
	"github.com/memberhub/portal/internal/core/ports"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "portal_session"

const sessionContextKey = "session"

// Session resolves the session cookie into a *domain.Session and injects it
// into the request context. A missing cookie, a bad token, or an unknown
// session id all yield an anonymous session; resolution never fails the
// request.
func Session(manager ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := &domain.Session{}
			if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				if resolved, err := manager.Resolve(c.Request().Context(), cookie.Value); err == nil {
					session = resolved
				}
			}
			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

// SessionFromContext returns the session injected by Session, or an anonymous
// session when the middleware did not run.
func SessionFromContext(c echo.Context) *domain.Session {
	if session, ok := c.Get(sessionContextKey).(*domain.Session); ok && session != nil {
		return session
	}
	return &domain.Session{}
}
