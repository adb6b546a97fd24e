package service

import (
	"context"
	"fmt"

	"github.com/memberhub/portal/internal/core/domain"
	"github.com/memberhub/portal/internal/core/ports"
)

// AdminService implements the admin-only account operations: listing users
// and moving a target username between the two roles. Role changes on a
// username with no matching account are silent no-ops, matching the store
// contract.
type AdminService struct {
	users ports.UserRepository
}

func NewAdminService(users ports.UserRepository) *AdminService {
	return &AdminService{users: users}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *AdminService) Promote(ctx context.Context, username string) error {
	return s.users.UpdateRole(ctx, username, domain.RoleAdmin)
}

func (s *AdminService) Demote(ctx context.Context, username string) error {
	return s.users.UpdateRole(ctx, username, domain.RoleUser)
}
