package ports

import (
	"context"
	"time"
)

// SessionStore is the token registry: it maps a session id (the token's jti
// claim) to the user it was issued for, with a TTL matching the token expiry.
// A token whose session id is absent from the store is revoked or expired and
// must be rejected by the validator.
type SessionStore interface {
	Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	// Lookup returns the user id bound to sessionID, or
	// domain.ErrUnauthenticated when the session does not exist.
	Lookup(ctx context.Context, sessionID string) (string, error)
	// Revoke removes the session. Revoking an absent session is not an error.
	Revoke(ctx context.Context, sessionID string) error
}
