package ports

import (
	"context"

	"github.com/northstar/goals-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser resolves a token subject to a stored user. A subject that no
	// longer exists yields domain.ErrUserNotFound, which callers treat as an
	// authentication failure.
	CurrentUser(ctx context.Context, subject string) (*domain.User, error)
}

// TokenService issues and validates stateless bearer tokens. Validity is a
// pure function of signature and embedded expiry; no revocation list exists.
type TokenService interface {
	Issue(subject string) (string, error)
	Validate(token string) (string, error)
}

// LoginThrottle limits repeated failed login attempts per identifier.
// Implementations may be no-ops when throttling is not configured.
type LoginThrottle interface {
	Allow(ctx context.Context, email string) error
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
