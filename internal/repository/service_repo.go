package repository

import (
	"context"

	"talentbook/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// Update replaces every mutable field of the row. Ownership must already have
// been checked via GetForTalent.
func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Model(&domain.Service{}).
		Where("id = ? AND user_id = ?", s.ID, s.UserID).
		Updates(map[string]any{
			"title":                 s.Title,
			"description":           s.Description,
			"duration":              s.Duration,
			"price":                 s.Price,
			"discount":              s.Discount,
			"discount_type":         s.DiscountType,
			"advance_payment":       s.AdvancePayment,
			"advance_payment_value": s.AdvancePaymentValue,
			"advance_payment_type":  s.AdvancePaymentType,
		}).Error
}

// GetForTalent fetches a service only when it belongs to the given talent.
// Missing and not-owned are indistinguishable to the caller.
func (r *ServiceRepository) GetForTalent(ctx context.Context, serviceID, talentID int64) (*domain.Service, error) {
	var s domain.Service
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", serviceID, talentID).
		First(&s)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *ServiceRepository) ListByTalent(ctx context.Context, talentID int64) ([]domain.Service, error) {
	var services []domain.Service
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", talentID).
		Order("id").
		Find(&services)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return services, nil
}

// DeleteWithBookings removes the service and every booking referencing it in
// one transaction, dependents first, so a partial failure cannot leave
// orphaned bookings behind.
func (r *ServiceRepository) DeleteWithBookings(ctx context.Context, serviceID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", serviceID).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Service{}, serviceID).Error
	})
}
