package booking

import (
	"context"

	"talentbook/internal/domain"
)

// BookingRepositoryInterface covers only the methods the lifecycle engine uses.
type BookingRepositoryInterface interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetForTalent(ctx context.Context, bookingID, talentID int64) (*domain.Booking, error)
	GetForClient(ctx context.Context, bookingID, clientID int64) (*domain.Booking, error)
	ListByTalent(ctx context.Context, talentID int64) ([]domain.Booking, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}

// TalentReader resolves the talent referenced by a booking request.
type TalentReader interface {
	GetTalentByStageName(ctx context.Context, stageName string) (*domain.User, error)
}

// ServiceReader fetches a service scoped to its owning talent.
type ServiceReader interface {
	GetForTalent(ctx context.Context, serviceID, talentID int64) (*domain.Service, error)
}
