package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"time"

	"github.com/abiramijewels/aurum/internal/auth/domain"
	"github.com/abiramijewels/aurum/internal/auth/password"
	"github.com/abiramijewels/aurum/internal/clock"
	"github.com/abiramijewels/aurum/internal/config"
	"github.com/abiramijewels/aurum/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const sessionTokenBytes = 32

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Cfg      config.Config
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     domain.Repository
	Sessions domain.SessionRepository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	cfg        config.Config
	genID      *snowflake.Node
	clock      clock.Clock
	repo       domain.Repository
	sessions   domain.SessionRepository
	sessionTTL time.Duration
}

func New(p Params) domain.Service {
	ttl := time.Duration(p.Cfg.SessionTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("auth.service"),
		cfg:        p.Cfg,
		genID:      p.GenID,
		clock:      p.Clock,
		repo:       p.Repo,
		sessions:   p.Sessions,
		sessionTTL: ttl,
	}
}

func (s *Service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidEmail
	}
	if req.Password == "" {
		return nil, domain.ErrInvalidPassword
	}

	existing, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	user := &domain.User{
		ID:           s.genID.Generate().Int64(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Wishlist:     datatypes.NewJSONSlice([]string{}),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ctx, s.db, user); err != nil {
		// Concurrent signup can slip past the lookup; the unique index wins.
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, pass string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, s.db, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(pass, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, s.db, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (s *Service) ToggleWishlist(ctx context.Context, email, productID string) (*domain.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	productID = strings.TrimSpace(productID)
	wishlist := make([]string, 0, len(user.Wishlist)+1)
	removed := false
	for _, id := range user.Wishlist {
		if id == productID {
			removed = true
			continue
		}
		wishlist = append(wishlist, id)
	}
	if !removed {
		wishlist = append(wishlist, productID)
	}

	user.Wishlist = datatypes.NewJSONSlice(wishlist)
	user.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, s.db, user); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyPassword re-authenticates against the stored credential. The archive
// gate calls this at the moment of archiving rather than trusting any value
// held client-side.
func (s *Service) VerifyPassword(ctx context.Context, email, pass string) error {
	user, err := s.repo.FindByEmail(ctx, s.db, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil || !password.Verify(pass, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (s *Service) CreateSession(ctx context.Context, userID int64) (string, time.Time, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", time.Time{}, err
	}

	now := s.clock.Now()
	entry := &domain.Session{
		ID:        s.genID.Generate().Int64(),
		UserID:    userID,
		TokenHash: hashToken(token),
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.InsertSession(ctx, s.db, entry); err != nil {
		return "", time.Time{}, err
	}
	return token, entry.ExpiresAt, nil
}

func (s *Service) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	entry, err := s.sessions.FindSessionByTokenHash(ctx, s.db, hashToken(token))
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.RevokedAt != nil {
		return nil, domain.ErrInvalidSession
	}
	if s.clock.Now().After(entry.ExpiresAt) {
		return nil, domain.ErrSessionExpired
	}

	user, err := s.repo.FindByID(ctx, s.db, entry.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidSession
	}
	return user, nil
}

// RevokeSession is a no-op for unknown tokens so logout stays idempotent.
func (s *Service) RevokeSession(ctx context.Context, token string) error {
	entry, err := s.sessions.FindSessionByTokenHash(ctx, s.db, hashToken(strings.TrimSpace(token)))
	if err != nil {
		return err
	}
	if entry == nil {
		return nil
	}
	return s.sessions.RevokeSession(ctx, s.db, entry.ID, s.clock.Now())
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
