package repository

import (
	"context"
	"strings"
	"time"

	"github.com/abiramijewels/aurum/internal/auth/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() (domain.Repository, domain.SessionRepository) {
	r := &repo{}
	return r, r
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, user *domain.User) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO users (id, name, email, password_hash, wishlist, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Wishlist,
		user.CreatedAt,
		user.UpdatedAt,
	).Error
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, email, password_hash, wishlist, created_at, updated_at
		 FROM users WHERE lower(email) = ?`,
		strings.ToLower(strings.TrimSpace(email)),
	).Scan(&u).Error
	if err != nil {
		return nil, err
	}
	if u.ID == 0 {
		return nil, nil
	}
	return &u, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, email, password_hash, wishlist, created_at, updated_at
		 FROM users WHERE id = ?`,
		id,
	).Scan(&u).Error
	if err != nil {
		return nil, err
	}
	if u.ID == 0 {
		return nil, nil
	}
	return &u, nil
}

func (r *repo) InsertSession(ctx context.Context, db *gorm.DB, session *domain.Session) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO sessions (id, user_id, token_hash, expires_at, revoked_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.UserID,
		session.TokenHash,
		session.ExpiresAt,
		session.RevokedAt,
		session.CreatedAt,
	).Error
}

func (r *repo) FindSessionByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) (*domain.Session, error) {
	var s domain.Session
	err := db.WithContext(ctx).Raw(
		`SELECT id, user_id, token_hash, expires_at, revoked_at, created_at
		 FROM sessions WHERE token_hash = ?`,
		tokenHash,
	).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == 0 {
		return nil, nil
	}
	return &s, nil
}

func (r *repo) RevokeSession(ctx context.Context, db *gorm.DB, id int64, revokedAt time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE sessions SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL`,
		revokedAt,
		id,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, user *domain.User) error {
	if user == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE users SET name = ?, wishlist = ?, updated_at = ? WHERE id = ?`,
		user.Name,
		user.Wishlist,
		user.UpdatedAt,
		user.ID,
	).Error
}
