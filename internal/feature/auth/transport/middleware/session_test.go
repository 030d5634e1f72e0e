package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"chat_backend/internal/feature/auth/domain"
	authhandler "chat_backend/internal/feature/auth/transport/handler"
)

// mockResolver is a mock implementation of the SessionResolver interface.
type mockResolver struct {
	ResolveFunc func(ctx context.Context, token string) (uint, error)
}

func (m *mockResolver) Resolve(ctx context.Context, token string) (uint, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, token)
	}
	return 0, domain.ErrSessionNotFound
}

func newProtectedRouter(resolver SessionResolver) (*gin.Engine, *bool, *uint) {
	gin.SetMode(gin.TestMode)

	called := false
	var seenUserID uint

	r := gin.New()
	r.GET("/protected", SessionRequired(resolver), func(c *gin.Context) {
		called = true
		if id, ok := UserID(c); ok {
			seenUserID = id
		}
		c.Status(http.StatusOK)
	})
	return r, &called, &seenUserID
}

func TestSessionRequired(t *testing.T) {
	t.Run("resolvable cookie passes and exposes the user ID", func(t *testing.T) {
		resolver := &mockResolver{
			ResolveFunc: func(ctx context.Context, token string) (uint, error) {
				if token == "live-token" {
					return 42, nil
				}
				return 0, domain.ErrSessionNotFound
			},
		}
		router, called, userID := newProtectedRouter(resolver)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: authhandler.CookieName, Value: "live-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *called)
		assert.Equal(t, uint(42), *userID)
	})

	t.Run("missing cookie is rejected with 401", func(t *testing.T) {
		router, called, _ := newProtectedRouter(&mockResolver{})

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *called, "handler must not run without a session")
	})

	t.Run("dead session is rejected with 401", func(t *testing.T) {
		router, called, _ := newProtectedRouter(&mockResolver{})

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: authhandler.CookieName, Value: "stale-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *called)
	})

	t.Run("store failure is a 500, not a 401", func(t *testing.T) {
		resolver := &mockResolver{
			ResolveFunc: func(ctx context.Context, token string) (uint, error) {
				return 0, errors.New("redis unreachable")
			},
		}
		router, called, _ := newProtectedRouter(resolver)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: authhandler.CookieName, Value: "any"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, *called)
	})
}
