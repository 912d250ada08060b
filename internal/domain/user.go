package domain

import "time"

// User is the internal identity behind an external OAuth account. The
// user_id is minted once per email; later exchanges only refresh the
// display fields.
type User struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Picture   string    `json:"picture,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "user" }

// Session binds a provider-issued opaque token to a user. A user may hold
// any number of concurrent sessions; rows are deleted on logout and
// otherwise only checked for expiry at lookup time.
type Session struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UserID       string    `gorm:"index;not null" json:"user_id"`
	SessionToken string    `gorm:"uniqueIndex;not null" json:"session_token"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Session) TableName() string { return "user_session" }
