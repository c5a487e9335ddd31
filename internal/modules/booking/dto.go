package booking

type BookTalentRequest struct {
	TalentStageName string `json:"talent_stage_name" validate:"required"`
	ServiceID       int64  `json:"service_id" validate:"required"`
	BookingDate     string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime     string `json:"booking_time" validate:"required,datetime=15:04"`
}
