package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/memberhub/portal/internal/core/domain"
)

type stubUserRepo struct {
	users       []domain.User
	createCalls int
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (string, error) {
	r.createCalls++
	u := *user
	u.ID = fmt.Sprintf("id-%d", len(r.users)+1)
	r.users = append(r.users, u)
	return u.ID, nil
}

func (r *stubUserRepo) FindAllByEmail(_ context.Context, email string) ([]domain.User, error) {
	var matches []domain.User
	for _, u := range r.users {
		if u.Email == email {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, username, role string) error {
	for i := range r.users {
		if r.users[i].Username == username {
			r.users[i].Role = role
		}
	}
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

type stubSessionManager struct {
	startCalls int
}

func (m *stubSessionManager) Start(_ context.Context, user *domain.User) (*domain.Session, string, error) {
	m.startCalls++
	return &domain.Session{
		ID:            fmt.Sprintf("sess-%d", m.startCalls),
		Authenticated: true,
		Username:      user.Username,
		Role:          user.Role,
		ExpiresAt:     time.Now().Add(time.Hour),
	}, "token-" + user.Username, nil
}

func (m *stubSessionManager) Resolve(_ context.Context, _ string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (m *stubSessionManager) Destroy(_ context.Context, _ *domain.Session) error {
	return nil
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := &stubUserRepo{}
	sessions := &stubSessionManager{}
	svc := NewAuthService(repo, sessions)

	session, token, err := svc.Signup(context.Background(), "ann", "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token")
	}
	if !session.Authenticated {
		t.Fatalf("expected authenticated session")
	}
	if session.Username != "ann" || session.Role != domain.RoleUser {
		t.Fatalf("unexpected session identity: %+v", session)
	}

	stored := repo.users[0]
	if stored.PasswordHash == "secret1" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if stored.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, stored.Role)
	}
}

func TestAuthService_Signup_InvalidUsername(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, &stubSessionManager{})

	for _, username := range []string{strings.Repeat("a", 31), "ann!", ""} {
		_, _, err := svc.Signup(context.Background(), username, "a@b.com", "secret1")
		var ve *domain.ValidationError
		if !errors.As(err, &ve) || ve.Field != "username" {
			t.Fatalf("username %q: expected username ValidationError, got %v", username, err)
		}
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no store writes, got %d", repo.createCalls)
	}
}

func TestAuthService_Signup_InvalidEmail(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, &stubSessionManager{})

	_, _, err := svc.Signup(context.Background(), "ann", "nope", "secret1")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "email" {
		t.Fatalf("expected email ValidationError, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no store writes, got %d", repo.createCalls)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &stubUserRepo{}
	sessions := &stubSessionManager{}
	svc := NewAuthService(repo, sessions)

	if _, _, err := svc.Signup(context.Background(), "carol", "c@b.com", "s3cret"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	session, token, err := svc.Login(context.Background(), "c@b.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token")
	}
	if session.Username != "carol" || !session.Authenticated {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &stubUserRepo{}
	sessions := &stubSessionManager{}
	svc := NewAuthService(repo, sessions)

	_, _, _ = svc.Signup(context.Background(), "dave", "d@b.com", "goodpass")
	sessions.startCalls = 0

	if _, _, err := svc.Login(context.Background(), "d@b.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sessions.startCalls != 0 {
		t.Fatalf("no session should be started on failed login")
	}
}

func TestAuthService_Login_NoMatch(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, &stubSessionManager{})

	if _, _, err := svc.Login(context.Background(), "ghost@b.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_DuplicateAccounts(t *testing.T) {
	// Two accounts under the same email: even the correct password must fail
	// with the same generic error as a missing account.
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, &stubSessionManager{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), hashCost)
	for _, name := range []string{"first", "second"} {
		repo.users = append(repo.users, domain.User{
			Username:     name,
			Email:        "dupe@b.com",
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
		})
	}

	if _, _, err := svc.Login(context.Background(), "dupe@b.com", "secret1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_OverlongEmail(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, &stubSessionManager{})

	if _, _, err := svc.Login(context.Background(), strings.Repeat("a", 31), "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
