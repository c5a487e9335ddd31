package catalog

import "talentbook/internal/domain"

// ServiceAttrs carries the full mutable field set of a service; updates are a
// full replace, not a patch.
type ServiceAttrs struct {
	ServiceName         string   `json:"service_name" validate:"required,max=255"`
	Description         string   `json:"description" validate:"required,max=1000"`
	Duration            int      `json:"duration" validate:"required,gte=1"`
	Price               float64  `json:"price" validate:"gte=0"`
	Discount            float64  `json:"discount" validate:"gte=0"`
	DiscountType        string   `json:"discount_type" validate:"required,oneof=fixed percentage"`
	AdvancePayment      bool     `json:"advance_payment"`
	AdvancePaymentValue *float64 `json:"advance_payment_value" validate:"required_if=AdvancePayment true"`
	AdvancePaymentType  *string  `json:"advance_payment_type" validate:"required_if=AdvancePayment true,omitempty,oneof=fixed percentage"`
}

type AddServiceRequest struct {
	ServiceAttrs
}

type UpdateServiceRequest struct {
	ServiceID int64 `json:"service_id" validate:"required"`
	ServiceAttrs
}

type RemoveServiceRequest struct {
	ServiceID int64 `json:"service_id" validate:"required"`
}

type TalentServicesRequest struct {
	TalentStageName string `json:"talent_stage_name" form:"talent_stage_name" validate:"required"`
}

// TalentPublic is the talent shape exposed to clients browsing the catalog.
type TalentPublic struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	StageName string `json:"stage_name"`
}

func toTalentPublic(u domain.User) TalentPublic {
	return TalentPublic{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		StageName: u.StageName,
	}
}
