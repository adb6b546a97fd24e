package ports

import (
	"context"

	"github.com/memberhub/portal/internal/core/domain"
)

// SessionStore persists server-side session records keyed by session id.
// Find returns domain.ErrSessionNotFound for unknown or expired ids.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
