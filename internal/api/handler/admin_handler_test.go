package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memberhub/portal/internal/core/domain"
)

type stubAdminService struct {
	users    []domain.User
	promoted []string
	demoted  []string
}

func (s *stubAdminService) ListUsers(_ context.Context) ([]domain.User, error) {
	return s.users, nil
}

func (s *stubAdminService) Promote(_ context.Context, username string) error {
	s.promoted = append(s.promoted, username)
	return nil
}

func (s *stubAdminService) Demote(_ context.Context, username string) error {
	s.demoted = append(s.demoted, username)
	return nil
}

func TestAdminPage_RendersUserList(t *testing.T) {
	e := echo.New()
	renderer := &recordingRenderer{}
	e.Renderer = renderer
	h := NewAdminHandler(&stubAdminService{users: []domain.User{
		{Username: "ann", Role: domain.RoleUser},
		{Username: "root", Role: domain.RoleAdmin},
	}})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.AdminPage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin.html", renderer.name)

	data, ok := renderer.data.(map[string][]domain.User)
	require.True(t, ok, "unexpected template data %T", renderer.data)
	assert.Len(t, data["Users"], 2)
}

func TestPromote_TargetsFormUsername(t *testing.T) {
	e := echo.New()
	svc := &stubAdminService{}
	h := NewAdminHandler(svc)

	c, rec := postForm(e, "/promote", url.Values{"userId": {"ann"}})

	require.NoError(t, h.Promote(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{"ann"}, svc.promoted)
}

func TestDemote_TargetsFormUsername(t *testing.T) {
	e := echo.New()
	svc := &stubAdminService{}
	h := NewAdminHandler(svc)

	c, rec := postForm(e, "/demote", url.Values{"userId": {"root"}})

	require.NoError(t, h.Demote(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{"root"}, svc.demoted)
}
