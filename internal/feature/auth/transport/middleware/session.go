// Package middleware provides session-based request authentication.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chat_backend/internal/feature/auth/domain"
	"chat_backend/internal/feature/auth/transport/handler"
)

// ContextUserID is the gin context key holding the authenticated user ID.
const ContextUserID = "userID"

// SessionResolver resolves a session token to a user ID.
// Following Go convention: interfaces are defined by the consumer (middleware),
// not the provider (platform/session).
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (uint, error)
}

// SessionRequired returns a Gin middleware that restricts access to requests
// carrying a resolvable session cookie. The bound user ID is stored under
// ContextUserID for downstream handlers.
func SessionRequired(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(handler.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
				return
			}
			slog.Error("session resolution failed", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user ID set by SessionRequired.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
