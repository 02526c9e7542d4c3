package ports

import (
	"context"
	"time"
)

// SessionStore tracks live authenticated sessions keyed by the token's
// session id. Set on login, Delete on logout; entries lapse on their own
// after ttl. Get returns domain.ErrSessionExpired for absent sessions.
type SessionStore interface {
	Set(ctx context.Context, sessionID, username string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
