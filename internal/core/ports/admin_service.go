package ports

import (
	"context"

	"github.com/memberhub/portal/internal/core/domain"
)

type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	Promote(ctx context.Context, username string) error
	Demote(ctx context.Context, username string) error
}
