package booking

import "errors"

var (
	ErrTalentNotFound    = errors.New("talent not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrForbidden         = errors.New("actor may not set this status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidation        = errors.New("validation failed")
)
