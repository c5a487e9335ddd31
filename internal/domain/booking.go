package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// bookingTransitions lists the statuses reachable from each state. Rejected,
// completed and cancelled have no outgoing edges: once a booking lands there
// it is closed for good.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:  {BookingAccepted, BookingRejected, BookingCancelled},
	BookingAccepted: {BookingCompleted, BookingCancelled},
}

// CanTransitionTo reports whether the state machine permits moving from s to
// next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Terminal reports whether s has no outgoing transitions.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

// Booking links a client to one of a talent's services. Price is copied from
// the service at creation time and never re-read, so later price edits do not
// affect existing bookings. A booking is removed only when its service is
// deleted.
type Booking struct {
	ID          int64         `json:"id"`
	TalentID    int64         `json:"talent_id" gorm:"index"`
	ClientID    int64         `json:"client_id" gorm:"index"`
	ServiceID   int64         `json:"service_id" gorm:"index"`
	Price       float64       `json:"price"`
	BookingDate time.Time     `json:"booking_date"`
	BookingTime string        `json:"booking_time"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
