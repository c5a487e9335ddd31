package repository

import (
	"context"

	"talentbook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// GetForTalent fetches a booking only when the given talent is its talent
// party. Bookings outside the talent's scope look exactly like missing rows.
func (r *BookingRepository) GetForTalent(ctx context.Context, bookingID, talentID int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Where("id = ? AND talent_id = ?", bookingID, talentID).
		First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// GetForClient is the client-scoped counterpart of GetForTalent.
func (r *BookingRepository) GetForClient(ctx context.Context, bookingID, clientID int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", bookingID, clientID).
		First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) ListByTalent(ctx context.Context, talentID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("talent_id = ?", talentID).
		Order("id").
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}

func (r *BookingRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id").
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}

// UpdateStatus is a plain single-row write. Concurrent transitions on the
// same booking are last-write-wins.
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}
