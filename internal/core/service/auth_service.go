package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/memberhub/portal/internal/core/domain"
	"github.com/memberhub/portal/internal/core/ports"
)

// hashCost is the bcrypt work factor used for all stored passwords.
const hashCost = 10

// AuthService implements signup and login, establishing a session on success.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionManager
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionManager) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Signup validates the credentials, stores the new account with the default
// user role, and starts an authenticated session for it.
//
// The store performs no uniqueness check on email or username; the insert is
// followed by a lookup by email and the first match seeds the session. Two
// concurrent signups with the same email can therefore both succeed, leaving
// duplicate accounts behind. Login defends against that separately.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*domain.Session, string, error) {
	if err := ValidateSignup(username, email, password); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	matches, err := s.users.FindAllByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("find created user: %w", err)
	}
	if len(matches) == 0 {
		return nil, "", fmt.Errorf("created user vanished for email %q", email)
	}

	return s.sessions.Start(ctx, &matches[0])
}

// Login authenticates by email and password. Anything other than exactly one
// account matching the email fails the same way as a wrong password, so the
// caller can never distinguish a missing account from a duplicated one.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	if err := ValidateLogin(email); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	matches, err := s.users.FindAllByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("find user: %w", err)
	}
	if len(matches) != 1 {
		return nil, "", domain.ErrInvalidCredentials
	}

	user := matches[0]
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	return s.sessions.Start(ctx, &user)
}
