package catalog

import (
	"context"
	"errors"

	"talentbook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	services ServiceRepositoryInterface
	users    UserReader
}

func NewService(services ServiceRepositoryInterface, users UserReader) *Service {
	return &Service{
		services: services,
		users:    users,
	}
}

// AddService creates a listing owned by the talent. The advance-payment value
// and type travel together with the flag: required when it is set, dropped
// when it is not.
func (s *Service) AddService(ctx context.Context, talentID int64, attrs ServiceAttrs) (*domain.Service, error) {
	svc, err := buildService(talentID, attrs)
	if err != nil {
		return nil, err
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// UpdateService fully replaces the mutable fields of a service the talent
// owns. A service owned by someone else is reported as not found.
func (s *Service) UpdateService(ctx context.Context, talentID int64, req UpdateServiceRequest) (*domain.Service, error) {
	existing, err := s.services.GetForTalent(ctx, req.ServiceID, talentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	svc, err := buildService(talentID, req.ServiceAttrs)
	if err != nil {
		return nil, err
	}
	svc.ID = existing.ID
	svc.CreatedAt = existing.CreatedAt

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// RemoveService deletes the service and cascades over its bookings. The
// delete is irreversible; there is no soft-delete.
func (s *Service) RemoveService(ctx context.Context, talentID, serviceID int64) error {
	if _, err := s.services.GetForTalent(ctx, serviceID, talentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	return s.services.DeleteWithBookings(ctx, serviceID)
}

func (s *Service) ListOwnServices(ctx context.Context, talentID int64) ([]domain.Service, error) {
	return s.services.ListByTalent(ctx, talentID)
}

func (s *Service) ListTalents(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleTalent)
}

// GetServicesByTalent lists a talent's services using their public stage
// name as the lookup key.
func (s *Service) GetServicesByTalent(ctx context.Context, stageName string) ([]domain.Service, error) {
	talent, err := s.users.GetTalentByStageName(ctx, stageName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTalentNotFound
		}
		return nil, err
	}
	return s.services.ListByTalent(ctx, talent.ID)
}

func buildService(talentID int64, attrs ServiceAttrs) (*domain.Service, error) {
	svc := &domain.Service{
		UserID:         talentID,
		Title:          attrs.ServiceName,
		Description:    attrs.Description,
		Duration:       attrs.Duration,
		Price:          attrs.Price,
		Discount:       attrs.Discount,
		DiscountType:   domain.AmountType(attrs.DiscountType),
		AdvancePayment: attrs.AdvancePayment,
	}

	if attrs.AdvancePayment {
		if attrs.AdvancePaymentValue == nil || attrs.AdvancePaymentType == nil {
			return nil, ErrAdvancePaymentTerms
		}
		svc.AdvancePaymentValue = attrs.AdvancePaymentValue
		t := domain.AmountType(*attrs.AdvancePaymentType)
		svc.AdvancePaymentType = &t
	}

	return svc, nil
}
