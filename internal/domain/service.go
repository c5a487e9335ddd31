package domain

import "time"

// AmountType qualifies a money-like field as an absolute amount or a
// percentage of the service price.
type AmountType string

const (
	AmountFixed      AmountType = "fixed"
	AmountPercentage AmountType = "percentage"
)

// Service is a bookable offering owned by exactly one talent. Ownership is
// the creator relation and is not transferable.
type Service struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Duration is in minutes.
	Duration     int        `json:"duration"`
	Price        float64    `json:"price"`
	Discount     float64    `json:"discount"`
	DiscountType AmountType `json:"discount_type"`

	// AdvancePaymentValue and AdvancePaymentType are set iff AdvancePayment
	// is true.
	AdvancePayment      bool        `json:"advance_payment"`
	AdvancePaymentValue *float64    `json:"advance_payment_value,omitempty"`
	AdvancePaymentType  *AmountType `json:"advance_payment_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
