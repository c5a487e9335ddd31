package booking

import (
	"context"
	"errors"
	"time"

	"talentbook/internal/domain"

	"gorm.io/gorm"
)

// targetsByRole is the permission half of the lifecycle engine: which target
// statuses each role may request on a booking within its own scope. The
// reachable-state half lives on domain.BookingStatus.
var targetsByRole = map[domain.UserRole][]domain.BookingStatus{
	domain.RoleTalent: {
		domain.BookingAccepted,
		domain.BookingRejected,
		domain.BookingCompleted,
		domain.BookingCancelled,
	},
	domain.RoleClient: {
		domain.BookingCompleted,
		domain.BookingCancelled,
	},
}

type Service struct {
	bookings BookingRepositoryInterface
	users    TalentReader
	services ServiceReader
}

func NewService(bookings BookingRepositoryInterface, users TalentReader, services ServiceReader) *Service {
	return &Service{
		bookings: bookings,
		users:    users,
		services: services,
	}
}

// CreateBooking resolves the talent by stage name and the service under that
// talent, snapshots the service price and opens the booking as pending. The
// price never tracks later service edits.
func (s *Service) CreateBooking(ctx context.Context, clientID int64, req BookTalentRequest) (*domain.Booking, error) {
	talent, err := s.users.GetTalentByStageName(ctx, req.TalentStageName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTalentNotFound
		}
		return nil, err
	}

	svc, err := s.services.GetForTalent(ctx, req.ServiceID, talent.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		TalentID:    talent.ID,
		ClientID:    clientID,
		ServiceID:   svc.ID,
		Price:       svc.Price,
		BookingDate: date,
		BookingTime: req.BookingTime,
		Status:      domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Transition moves a booking to the target status on behalf of an actor.
// The booking is looked up scoped to the actor's side of the relation, so a
// booking belonging to someone else is indistinguishable from a missing one.
// Transitions out of terminal states are refused with ErrInvalidTransition.
func (s *Service) Transition(ctx context.Context, actorID int64, actorRole domain.UserRole, bookingID int64, target domain.BookingStatus) (*domain.Booking, error) {
	if !roleMaySet(actorRole, target) {
		return nil, ErrForbidden
	}

	var (
		b   *domain.Booking
		err error
	)
	switch actorRole {
	case domain.RoleTalent:
		b, err = s.bookings.GetForTalent(ctx, bookingID, actorID)
	case domain.RoleClient:
		b, err = s.bookings.GetForClient(ctx, bookingID, actorID)
	default:
		return nil, ErrForbidden
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !b.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, b.ID, target); err != nil {
		return nil, err
	}

	b.Status = target
	return b, nil
}

func (s *Service) ListForTalent(ctx context.Context, talentID int64) ([]domain.Booking, error) {
	return s.bookings.ListByTalent(ctx, talentID)
}

func (s *Service) ListForClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	return s.bookings.ListByClient(ctx, clientID)
}

func roleMaySet(role domain.UserRole, target domain.BookingStatus) bool {
	for _, t := range targetsByRole[role] {
		if t == target {
			return true
		}
	}
	return false
}
