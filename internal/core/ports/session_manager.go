package ports

import (
	"context"

	"github.com/memberhub/portal/internal/core/domain"
)

// SessionManager owns the session lifecycle. Start returns the new session
// together with the signed token the client must present on later requests;
// Resolve maps a presented token back to its server-side record.
type SessionManager interface {
	Start(ctx context.Context, user *domain.User) (*domain.Session, string, error)
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	Destroy(ctx context.Context, session *domain.Session) error
}
