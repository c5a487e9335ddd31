package domain

import "time"

// AuthToken records an issued session token so that logout can revoke every
// live session for a user. The JTI inside the JWT must match a row that is
// neither revoked nor expired.
type AuthToken struct {
	ID        int64      `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64      `gorm:"column:user_id;index" json:"user_id"`
	JTI       string     `gorm:"column:jti;uniqueIndex" json:"jti"`
	ExpiresAt time.Time  `gorm:"column:expires_at" json:"expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at" json:"revoked_at,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (AuthToken) TableName() string { return "auth_tokens" }

// Active reports whether the token is still usable at the given instant.
func (t *AuthToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && t.ExpiresAt.After(now)
}
