package app

import (
	"context"

	"github.com/Manuelsilva1/Library/internal/auth/domain"
)

// SessionStore is the durable slot for the current session, with the same
// degrade-to-empty policy as the cart snapshot.
type SessionStore interface {
	Load() (domain.Session, bool, error)
	Save(s domain.Session) error
	Discard() error
}

// AuthClient exchanges credentials for a session with the remote API.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, name, email, password string) (domain.Session, error)
}
