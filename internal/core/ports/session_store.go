package ports

import (
	"context"
	"time"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
)

// SessionStore holds opaque session tokens against the user slice that
// travels with them. Implementations are volatile by contract: losing
// sessions on restart is acceptable, silently resurrecting expired ones
// is not.
type SessionStore interface {
	// Put stores user against token with the given lifetime.
	Put(ctx context.Context, token string, user domain.SessionUser, ttl time.Duration) error
	// Get returns the user for token, or domain.ErrUnauthorized when the
	// token is absent or expired.
	Get(ctx context.Context, token string) (domain.SessionUser, error)
	// Delete removes the session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
