package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/memberhub/portal/internal/core/domain"
	"github.com/memberhub/portal/internal/core/ports"
)

// DefaultSessionTTL matches the one-hour cookie lifetime of the portal.
// The TTL is set once at authentication; activity does not extend it.
const DefaultSessionTTL = time.Hour

// SessionManager implements the session lifecycle over a SessionStore.
// The client-facing token is an HS256-signed JWT carrying only the opaque
// session id; all session state stays server-side.
type SessionManager struct {
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionManager(store ports.SessionStore, secret string, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Start creates an authenticated session for user and returns it with the
// signed token the client must present back.
func (m *SessionManager) Start(ctx context.Context, user *domain.User) (*domain.Session, string, error) {
	session := &domain.Session{
		ID:            uuid.NewString(),
		Authenticated: true,
		Username:      user.Username,
		Role:          user.Role,
		ExpiresAt:     m.now().UTC().Add(m.ttl),
	}

	if err := m.store.Save(ctx, session); err != nil {
		return nil, "", fmt.Errorf("save session: %w", err)
	}

	token, err := m.signToken(session)
	if err != nil {
		return nil, "", fmt.Errorf("sign session token: %w", err)
	}
	return session, token, nil
}

// Resolve maps a presented token back to its server-side session record.
// A malformed or tampered token resolves to domain.ErrSessionNotFound, the
// same as an unknown session id, so the client only ever observes
// "no session".
func (m *SessionManager) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	id, err := m.parseToken(token)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	return m.store.Find(ctx, id)
}

// Destroy deletes the server-side record. Subsequent requests presenting the
// same token resolve to nothing and present as anonymous.
func (m *SessionManager) Destroy(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" {
		return nil
	}
	if err := m.store.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (m *SessionManager) signToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid": session.ID,
		"exp": session.ExpiresAt.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

func (m *SessionManager) parseToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", jwt.ErrTokenSignatureInvalid
	}
	id, _ := claims["sid"].(string)
	if id == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return id, nil
}
