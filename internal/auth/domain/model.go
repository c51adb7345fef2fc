package domain

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID           int64                       `json:"id" gorm:"primaryKey"`
	Name         string                      `json:"name" gorm:"type:text;not null"`
	Email        string                      `json:"email" gorm:"type:text;not null;uniqueIndex:ux_users_email"`
	PasswordHash string                      `json:"-" gorm:"column:password_hash;type:text;not null"`
	Wishlist     datatypes.JSONSlice[string] `json:"wishlist"`
	CreatedAt    time.Time                   `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time                   `json:"updated_at" gorm:"not null"`
}

func (User) TableName() string { return "users" }

// Session is a persisted login session. Only the sha256 of the cookie
// token is stored; the raw value never touches the database.
type Session struct {
	ID        int64      `gorm:"primaryKey"`
	UserID    int64      `gorm:"column:user_id;not null;index"`
	TokenHash string     `gorm:"column:token_hash;type:text;not null;uniqueIndex:ux_sessions_token_hash"`
	ExpiresAt time.Time  `gorm:"column:expires_at;not null;index"`
	RevokedAt *time.Time `gorm:"column:revoked_at"`
	CreatedAt time.Time  `gorm:"column:created_at;not null"`
}

func (Session) TableName() string { return "sessions" }
