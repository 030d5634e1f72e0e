package usecase

import "context"

// SessionStore abstracts the server-side session record keyed by an opaque
// token. Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (platform/session, adapters).
type SessionStore interface {
	// Create issues a fresh opaque token bound to the user ID and persists
	// the binding with the store's configured TTL.
	Create(ctx context.Context, userID uint) (string, error)

	// Resolve returns the user ID bound to the token.
	// It returns domain.ErrSessionNotFound when the token is unknown or expired.
	Resolve(ctx context.Context, token string) (uint, error)

	// Destroy removes the binding for the token. Destroying an absent or
	// expired session is not an error; the bool reports whether a live
	// session was actually removed.
	Destroy(ctx context.Context, token string) (bool, error)
}
