package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chat_backend/internal/feature/auth/domain"
	"chat_backend/internal/feature/auth/domain/entity"
)

// Read-only projection queries for the user directory endpoints. Only the
// safe columns are selected; the password hash never leaves the database.

// ListUsers returns the identity projection of every user.
func (r *userPostgres) ListUsers(ctx context.Context) ([]entity.Me, error) {
	var users []entity.Me
	if err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Select("id", "username", "email").
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns the identity projection of a single user.
// It returns domain.ErrUserNotFound when the user does not exist.
func (r *userPostgres) GetUser(ctx context.Context, id uint) (*entity.Me, error) {
	var me entity.Me
	if err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Select("id", "username", "email").
		Where("id = ?", id).
		First(&me).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &me, nil
}
