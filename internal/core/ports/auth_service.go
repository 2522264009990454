package ports

import (
	"context"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
)

// AuthService authenticates employees and manages their sessions.
type AuthService interface {
	// Login verifies credentials and opens a session, returning the opaque
	// token to place in the client cookie along with the session user.
	Login(ctx context.Context, username, password string) (string, domain.SessionUser, error)
	// Logout destroys the session for token. Idempotent.
	Logout(ctx context.Context, token string) error
	// Validate resolves a token to its session user, or
	// domain.ErrUnauthorized.
	Validate(ctx context.Context, token string) (domain.SessionUser, error)
}
