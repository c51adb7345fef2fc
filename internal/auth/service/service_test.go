package service

import (
	"context"
	"testing"
	"time"

	"github.com/abiramijewels/aurum/internal/auth/domain"
	"github.com/abiramijewels/aurum/internal/auth/repository"
	"github.com/abiramijewels/aurum/internal/clock"
	"github.com/abiramijewels/aurum/internal/config"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *clock.FakeClock, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Session{}))

	fake := clock.NewFakeClock(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC))
	return newServiceOver(t, db, fake), fake, db
}

func newServiceOver(t *testing.T, db *gorm.DB, fake *clock.FakeClock) domain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	userRepo, sessionRepo := repository.Provide()
	return New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		Cfg:      config.Config{SessionTTLHours: 1},
		GenID:    node,
		Clock:    fake,
		Repo:     userRepo,
		Sessions: sessionRepo,
	})
}

func signup(t *testing.T, svc domain.Service, email string) *domain.User {
	t.Helper()
	user, err := svc.Signup(context.Background(), domain.SignupRequest{
		Name:     "Priya Patel",
		Email:    email,
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	return user
}

func TestSignupAndLogin(t *testing.T) {
	svc, _, _ := newTestService(t)
	signup(t, svc, "priya.patel@example.com")

	user, err := svc.Login(context.Background(), "priya.patel@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "priya.patel@example.com", user.Email)
	assert.Empty(t, user.Wishlist)
}

func TestSignupNormalizesEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	user := signup(t, svc, "  Priya.Patel@Example.COM ")
	assert.Equal(t, "priya.patel@example.com", user.Email)

	// Login with any casing finds the same account.
	_, err := svc.Login(context.Background(), "PRIYA.PATEL@example.com", "s3cret-pass")
	assert.NoError(t, err)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	signup(t, svc, "priya.patel@example.com")

	_, err := svc.Signup(context.Background(), domain.SignupRequest{
		Name:     "Someone Else",
		Email:    "Priya.Patel@example.com",
		Password: "other-pass",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestSignupValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Signup(context.Background(), domain.SignupRequest{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Signup(context.Background(), domain.SignupRequest{Name: "A", Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Signup(context.Background(), domain.SignupRequest{Name: "A", Email: "a@b.c"})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	signup(t, svc, "priya.patel@example.com")

	_, err := svc.Login(context.Background(), "priya.patel@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	signup(t, svc, "priya.patel@example.com")

	assert.NoError(t, svc.VerifyPassword(context.Background(), "priya.patel@example.com", "s3cret-pass"))
	assert.ErrorIs(t, svc.VerifyPassword(context.Background(), "priya.patel@example.com", "wrong"), domain.ErrInvalidCredentials)
}

func TestSessionLifecycle(t *testing.T) {
	svc, fake, _ := newTestService(t)
	user := signup(t, svc, "priya.patel@example.com")

	token, expiresAt, err := svc.CreateSession(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, fake.Now().Add(time.Hour), expiresAt)

	resolved, err := svc.ResolveSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	require.NoError(t, svc.RevokeSession(context.Background(), token))
	_, err = svc.ResolveSession(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)

	// Revoking an already-revoked or unknown token stays a no-op.
	assert.NoError(t, svc.RevokeSession(context.Background(), token))
	assert.NoError(t, svc.RevokeSession(context.Background(), "no-such-token"))
}

func TestSessionExpiry(t *testing.T) {
	svc, fake, _ := newTestService(t)
	user := signup(t, svc, "priya.patel@example.com")

	token, _, err := svc.CreateSession(context.Background(), user.ID)
	require.NoError(t, err)
	fake.Advance(2 * time.Hour)

	_, err = svc.ResolveSession(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestSessionSurvivesRestart(t *testing.T) {
	svc, fake, db := newTestService(t)
	user := signup(t, svc, "priya.patel@example.com")

	token, _, err := svc.CreateSession(context.Background(), user.ID)
	require.NoError(t, err)

	// A fresh service over the same database sees the session.
	restarted := newServiceOver(t, db, fake)
	resolved, err := restarted.ResolveSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestSessionTokenStoredHashed(t *testing.T) {
	svc, _, db := newTestService(t)
	user := signup(t, svc, "priya.patel@example.com")

	token, _, err := svc.CreateSession(context.Background(), user.ID)
	require.NoError(t, err)

	var hash string
	require.NoError(t, db.Raw(`SELECT token_hash FROM sessions`).Scan(&hash).Error)
	assert.NotEqual(t, token, hash)
	assert.Len(t, hash, 64)

	var count int64
	require.NoError(t, db.Raw(`SELECT count(*) FROM sessions WHERE token_hash = ?`, token).Scan(&count).Error)
	assert.Zero(t, count)
}

func TestToggleWishlist(t *testing.T) {
	svc, _, _ := newTestService(t)
	signup(t, svc, "priya.patel@example.com")

	user, err := svc.ToggleWishlist(context.Background(), "priya.patel@example.com", "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"g1"}, []string(user.Wishlist))

	user, err = svc.ToggleWishlist(context.Background(), "priya.patel@example.com", "g1")
	require.NoError(t, err)
	assert.Empty(t, []string(user.Wishlist))
}
