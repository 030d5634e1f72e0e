package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "chat_backend/internal/feature/auth/adapters"
	"chat_backend/internal/feature/auth/usecase"
	"chat_backend/internal/platform/session"
)

// NewSessionStore creates a SessionStore implementation.
// If Redis is available, it returns a Redis-backed implementation with
// store-side TTL. Otherwise, it falls back to the relational store, which
// honors expiry on read.
func NewSessionStore(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.SessionStore {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session", ttl)
	}
	return authadapters.NewSessionPostgres(db, ttl)
}
