package domain

import "time"

// Session is the authenticated identity the storefront holds between
// requests. The token is opaque to us beyond its expiry claim; the backend
// owns verification.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

// Active reports whether the session can still gate protected routes. A zero
// expiry means the token carried no exp claim and is trusted until the
// backend rejects it.
func (s Session) Active(now time.Time) bool {
	if s.Token == "" {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return true
	}
	return now.Before(s.ExpiresAt)
}
