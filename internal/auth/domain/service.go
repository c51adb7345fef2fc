package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ToggleWishlist(ctx context.Context, email, productID string) (*User, error)

	// VerifyPassword re-checks a password against the stored credential.
	// Used by the catalog archive gate.
	VerifyPassword(ctx context.Context, email, password string) error

	CreateSession(ctx context.Context, userID int64) (token string, expiresAt time.Time, err error)
	ResolveSession(ctx context.Context, token string) (*User, error)
	RevokeSession(ctx context.Context, token string) error
}

type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

var (
	ErrUserExists         = errors.New("user_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidEmail       = errors.New("invalid_email")
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidPassword    = errors.New("invalid_password")
	ErrInvalidSession     = errors.New("invalid_session")
	ErrSessionExpired     = errors.New("session_expired")
	ErrNotFound           = errors.New("not_found")
)
