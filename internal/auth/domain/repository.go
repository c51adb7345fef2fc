package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, user *User) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*User, error)
	Update(ctx context.Context, db *gorm.DB, user *User) error
}

type SessionRepository interface {
	InsertSession(ctx context.Context, db *gorm.DB, session *Session) error
	FindSessionByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) (*Session, error)
	RevokeSession(ctx context.Context, db *gorm.DB, id int64, revokedAt time.Time) error
}
