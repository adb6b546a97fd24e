package domain

import "time"

// Session is the server-held state for one client, referenced by an opaque
// identifier carried in a signed cookie. The role is the one captured at
// authentication time; it is not re-read from the store on later requests.
type Session struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"authenticated"`
	Username      string    `json:"username"`
	Role          string    `json:"role"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// IsValid reports whether the session is authenticated and not yet expired.
func (s *Session) IsValid(now time.Time) bool {
	return s != nil && s.Authenticated && now.Before(s.ExpiresAt)
}
