package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/portal/internal/api/metrics"
	"github.com/memberhub/portal/internal/api/middleware"
	"github.com/memberhub/portal/internal/core/domain"
	"github.com/memberhub/portal/internal/core/ports"
)

// AuthHandler serves the signup/login forms and their submissions.
type AuthHandler struct {
	auth     ports.AuthService
	sessions ports.SessionManager
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionManager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type signupForm struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (h *AuthHandler) SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", nil)
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

// CreateUser handles the signup form. A validation failure re-prompts with
// the failing field named; anything else that goes wrong is an internal
// error. On success the client leaves with a fresh session cookie.
func (h *AuthHandler) CreateUser(c echo.Context) error {
	var form signupForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	session, token, err := h.auth.Signup(c.Request().Context(), form.Username, form.Email, form.Password)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.SignupsTotal.WithLabelValues("invalid_" + ve.Field).Inc()
			return c.Render(http.StatusOK, "signupfail.html", map[string]string{"Field": ve.Field})
		}
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	writeSessionCookie(c, token, session.ExpiresAt)
	return c.Redirect(http.StatusSeeOther, "/members")
}

// LoginUser handles the login form. Every credential failure renders the
// same generic page; the cause is never distinguished.
func (h *AuthHandler) LoginUser(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	session, token, err := h.auth.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.Render(http.StatusOK, "loginfail.html", nil)
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	writeSessionCookie(c, token, session.ExpiresAt)
	return c.Redirect(http.StatusSeeOther, "/members")
}

// Logout destroys the server-side session and expires the cookie. The
// redirect happens regardless of whether a session existed.
func (h *AuthHandler) Logout(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if err := h.sessions.Destroy(c.Request().Context(), session); err != nil {
		return err
	}
	metrics.LogoutsTotal.Inc()
	clearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
