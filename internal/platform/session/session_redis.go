// Package session provides the Redis-backed session store.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"chat_backend/internal/feature/auth/domain"
	"chat_backend/internal/feature/auth/domain/entity"
	"chat_backend/internal/feature/auth/usecase"
)

// DefaultTTL is the session lifetime when none is configured: 10 years,
// effectively "until explicit logout".
const DefaultTTL = 10 * 365 * 24 * time.Hour

// record is the JSON value stored under each session key.
type record struct {
	UserID uint `json:"userId"`
}

// SessionRedis implements usecase.SessionStore using Redis.
// Keys are opaque tokens; expiry is delegated to the Redis TTL.
type SessionRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Compile-time check to ensure SessionRedis implements SessionStore.
var _ usecase.SessionStore = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
// A non-positive ttl falls back to DefaultTTL.
func NewSessionRedis(client *redis.Client, prefix string, ttl time.Duration) *SessionRedis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionRedis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// sessionKey returns the Redis key for a session token.
func (r *SessionRedis) sessionKey(token string) string {
	return fmt.Sprintf("%s:%s", r.prefix, token)
}

// Create issues a fresh token and persists the binding with the configured TTL.
func (r *SessionRedis) Create(ctx context.Context, userID uint) (string, error) {
	token, err := entity.NewSessionToken()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(record{UserID: userID})
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, r.sessionKey(token), data, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Resolve returns the user ID bound to the token.
// Expired keys vanish via TTL and report domain.ErrSessionNotFound.
func (r *SessionRedis) Resolve(ctx context.Context, token string) (uint, error) {
	data, err := r.client.Get(ctx, r.sessionKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return 0, domain.ErrSessionNotFound
		}
		return 0, fmt.Errorf("failed to load session: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return rec.UserID, nil
}

// Destroy removes the binding for the token. Destroying an absent session is
// not an error; the bool reports whether a key was actually removed.
func (r *SessionRedis) Destroy(ctx context.Context, token string) (bool, error) {
	removed, err := r.client.Del(ctx, r.sessionKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to destroy session: %w", err)
	}
	return removed > 0, nil
}
