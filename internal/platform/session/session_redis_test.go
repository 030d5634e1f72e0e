package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat_backend/internal/feature/auth/domain"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

func TestNewSessionRedis(t *testing.T) {
	client, _ := setupTestRedis(t)

	t.Run("configured ttl is kept", func(t *testing.T) {
		store := NewSessionRedis(client, "session", time.Hour)
		assert.Equal(t, time.Hour, store.ttl)
	})

	t.Run("non-positive ttl falls back to the 10-year default", func(t *testing.T) {
		store := NewSessionRedis(client, "session", 0)
		assert.Equal(t, DefaultTTL, store.ttl)
	})
}

func TestSessionRedis_Create(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewSessionRedis(client, "session", time.Hour)
	ctx := context.Background()

	t.Run("issues a 64-character hex token", func(t *testing.T) {
		token, err := store.Create(ctx, 42)
		require.NoError(t, err)
		assert.Len(t, token, 64)
		assert.Regexp(t, "^[0-9a-f]+$", token)
	})

	t.Run("stores the binding as a JSON record with TTL", func(t *testing.T) {
		token, err := store.Create(ctx, 42)
		require.NoError(t, err)

		raw, err := mr.Get("session:" + token)
		require.NoError(t, err)

		var rec struct {
			UserID uint `json:"userId"`
		}
		require.NoError(t, json.Unmarshal([]byte(raw), &rec))
		assert.Equal(t, uint(42), rec.UserID)

		assert.Equal(t, time.Hour, mr.TTL("session:"+token))
	})

	t.Run("fresh token per session", func(t *testing.T) {
		t1, err := store.Create(ctx, 1)
		require.NoError(t, err)
		t2, err := store.Create(ctx, 1)
		require.NoError(t, err)
		assert.NotEqual(t, t1, t2)
	})
}

func TestSessionRedis_Resolve(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewSessionRedis(client, "session", time.Hour)
	ctx := context.Background()

	t.Run("resolves a live token", func(t *testing.T) {
		token, err := store.Create(ctx, 7)
		require.NoError(t, err)

		userID, err := store.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, uint(7), userID)
	})

	t.Run("unknown token returns ErrSessionNotFound", func(t *testing.T) {
		_, err := store.Resolve(ctx, "deadbeef")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("expired token returns ErrSessionNotFound", func(t *testing.T) {
		token, err := store.Create(ctx, 7)
		require.NoError(t, err)

		mr.FastForward(2 * time.Hour)

		_, err = store.Resolve(ctx, token)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("corrupt record is an error, not a panic", func(t *testing.T) {
		require.NoError(t, mr.Set("session:corrupt", "{not json"))

		_, err := store.Resolve(ctx, "corrupt")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrSessionNotFound)
	})
}

func TestSessionRedis_Destroy(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewSessionRedis(client, "session", time.Hour)
	ctx := context.Background()

	t.Run("destroying a live session reports true and removes the binding", func(t *testing.T) {
		token, err := store.Create(ctx, 42)
		require.NoError(t, err)

		found, err := store.Destroy(ctx, token)
		require.NoError(t, err)
		assert.True(t, found)

		_, err = store.Resolve(ctx, token)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("destroy is idempotent: absent token reports false without error", func(t *testing.T) {
		found, err := store.Destroy(ctx, "already-gone")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("expired token reports false", func(t *testing.T) {
		token, err := store.Create(ctx, 42)
		require.NoError(t, err)

		mr.FastForward(2 * time.Hour)

		found, err := store.Destroy(ctx, token)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
