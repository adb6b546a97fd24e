package ports

import (
	"context"

	"github.com/memberhub/portal/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.Session, string, error)
	Login(ctx context.Context, email, password string) (*domain.Session, string, error)
}
