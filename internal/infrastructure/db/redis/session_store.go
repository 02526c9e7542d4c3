package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vitacare/clinic-api/internal/core/domain"
)

// SessionStore keeps live sessions in Redis. Key format: session:<id>,
// value is the username, expiry matches the token TTL so an abandoned
// session lapses together with its token.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Set records a session for the authenticated username.
func (s *SessionStore) Set(ctx context.Context, sessionID, username string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(sessionID), username, ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

// Get returns the username behind a session id, or ErrSessionExpired when
// the session was logged out or has lapsed.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	username, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrSessionExpired
		}
		return "", fmt.Errorf("session get: %w", err)
	}
	return username, nil
}

// Delete clears a session immediately (logout).
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}
