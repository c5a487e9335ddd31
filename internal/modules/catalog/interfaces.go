package catalog

import (
	"context"

	"talentbook/internal/domain"
)

// ServiceRepositoryInterface covers only the methods the catalog service uses.
type ServiceRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Service) error
	Update(ctx context.Context, s *domain.Service) error
	GetForTalent(ctx context.Context, serviceID, talentID int64) (*domain.Service, error)
	ListByTalent(ctx context.Context, talentID int64) ([]domain.Service, error)
	DeleteWithBookings(ctx context.Context, serviceID int64) error
}

// UserReader resolves talents for the public catalog views.
type UserReader interface {
	GetTalentByStageName(ctx context.Context, stageName string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}
