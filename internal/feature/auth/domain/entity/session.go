package entity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Session represents the binding between an opaque session token and a user.
// The token itself is the identity of the record; nothing else is derivable
// from it.
type Session struct {
	Token     string    // 64-character hex string from a CSPRNG
	UserID    uint      // Bound user ID
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// NewSessionToken returns a fresh opaque session token: 32 bytes from
// crypto/rand, hex encoded. Tokens carry no structure a caller could decode.
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
