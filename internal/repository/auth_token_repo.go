package repository

import (
	"context"
	"errors"
	"time"

	"talentbook/internal/domain"

	"gorm.io/gorm"
)

// AuthTokenRepository provides DB access for issued session tokens.
type AuthTokenRepository struct {
	db *gorm.DB
}

func NewAuthTokenRepository(db *gorm.DB) *AuthTokenRepository {
	return &AuthTokenRepository{db: db}
}

func (r *AuthTokenRepository) Create(ctx context.Context, t *domain.AuthToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// IsActive reports whether the jti belongs to a token that is neither revoked
// nor expired. Unknown jtis count as inactive.
func (r *AuthTokenRepository) IsActive(ctx context.Context, jti string) (bool, error) {
	var t domain.AuthToken
	err := r.db.WithContext(ctx).Where("jti = ?", jti).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return t.Active(time.Now()), nil
}

// RevokeAllByUser closes every live session the user holds.
func (r *AuthTokenRepository) RevokeAllByUser(ctx context.Context, userID int64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&domain.AuthToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

// DeleteExpired drops rows that can never authenticate again.
func (r *AuthTokenRepository) DeleteExpired(ctx context.Context) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Where("expires_at < ? OR revoked_at IS NOT NULL", now).
		Delete(&domain.AuthToken{}).Error
}
