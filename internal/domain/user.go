package domain

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleTalent UserRole = "talent"
	RoleClient UserRole = "client"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTalent, RoleClient:
		return true
	}
	return false
}

// User is an account on the platform. Role is assigned at registration and
// never changes afterwards.
type User struct {
	ID              int64      `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	StageName       string     `json:"stage_name" gorm:"index"`
	Email           string     `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash    string     `json:"-"`
	Role            UserRole   `json:"role"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Verified reports whether the user may authenticate. Admins are verified at
// registration, everyone else after confirming their email.
func (u *User) Verified() bool {
	return u.EmailVerifiedAt != nil
}
