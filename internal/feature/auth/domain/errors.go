// Package domain defines domain-level errors for the auth feature.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrUserNotFound indicates that no user was found with the given criteria.
	// This is typically returned during login or identity lookup operations.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound indicates that no session is bound to the given token,
	// either because it never existed or because it expired.
	ErrSessionNotFound = errors.New("session not found")
)

// ConflictError indicates that a unique constraint rejected a user creation.
// Column names the conflicting column ("username" or "email"). Stores that
// cannot tell which column conflicted report "email" (documented ambiguity of
// the duplicate-key heuristic).
type ConflictError struct {
	Column string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate value for unique column %q", e.Column)
}
