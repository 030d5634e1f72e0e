// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"chat_backend/internal/feature/auth/domain"
	"chat_backend/internal/feature/auth/domain/entity"
	"chat_backend/internal/feature/auth/usecase"
)

// sessionPostgres is a relational implementation of the SessionStore
// interface, used when Redis is unavailable. Expiry is honored on read since
// there is no store-side TTL.
type sessionPostgres struct {
	db  *gorm.DB
	ttl time.Duration
}

// Compile-time check to ensure sessionPostgres implements SessionStore.
var _ usecase.SessionStore = (*sessionPostgres)(nil)

// NewSessionPostgres creates a new sessionPostgres with the given TTL.
func NewSessionPostgres(db *gorm.DB, ttl time.Duration) *sessionPostgres {
	return &sessionPostgres{db: db, ttl: ttl}
}

// Create issues a fresh token and persists the binding.
func (r *sessionPostgres) Create(ctx context.Context, userID uint) (string, error) {
	token, err := entity.NewSessionToken()
	if err != nil {
		return "", err
	}

	now := time.Now()
	model := SessionModelFromEntity(&entity.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(r.ttl),
	})
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the user ID bound to the token.
// Expired rows are deleted lazily and reported as not found.
func (r *sessionPostgres) Resolve(ctx context.Context, token string) (uint, error) {
	var model SessionModel
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrSessionNotFound
		}
		return 0, err
	}

	if model.ToEntity().IsExpired() {
		r.db.WithContext(ctx).Delete(&SessionModel{}, "token = ?", token)
		return 0, domain.ErrSessionNotFound
	}
	return model.UserID, nil
}

// Destroy removes the binding for the token. It reports true only when a
// non-expired session was removed; destroying an absent or expired session
// is not an error.
func (r *sessionPostgres) Destroy(ctx context.Context, token string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, time.Now()).
		Delete(&SessionModel{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	// Clean up an expired leftover, if any.
	if err := r.db.WithContext(ctx).Delete(&SessionModel{}, "token = ?", token).Error; err != nil {
		return false, err
	}
	return false, nil
}
