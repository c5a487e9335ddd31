package catalog

import "errors"

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrTalentNotFound      = errors.New("talent not found")
	ErrAdvancePaymentTerms = errors.New("advance payment terms incomplete")
)
