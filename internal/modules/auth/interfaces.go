package auth

import (
	"context"
	"time"

	"talentbook/internal/domain"
)

// UserRepositoryInterface covers only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	MarkEmailVerified(ctx context.Context, userID int64, at time.Time) error
}

// TokenRepositoryInterface is the storage for issued session tokens.
type TokenRepositoryInterface interface {
	Create(ctx context.Context, t *domain.AuthToken) error
	RevokeAllByUser(ctx context.Context, userID int64) error
}
