package ports

import (
	"context"

	"github.com/memberhub/portal/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
//
// Neither username nor email carries a uniqueness constraint; FindAllByEmail
// therefore returns every match and leaves the exactly-one decision to the
// caller. UpdateRole on an unmatched username is a silent no-op.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	FindAllByEmail(ctx context.Context, email string) ([]domain.User, error)
	UpdateRole(ctx context.Context, username, role string) error
	List(ctx context.Context) ([]domain.User, error)
}
