package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abiramijewels/aurum/internal/actorctx"
	auditdomain "github.com/abiramijewels/aurum/internal/audit/domain"
	auditservice "github.com/abiramijewels/aurum/internal/audit/service"
	catalogdomain "github.com/abiramijewels/aurum/internal/catalog/domain"
	"github.com/abiramijewels/aurum/internal/clock"
	"github.com/abiramijewels/aurum/internal/config"
	"github.com/abiramijewels/aurum/internal/settings/domain"
	"github.com/abiramijewels/aurum/internal/settings/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stubRepo struct {
	inner   domain.Repository
	saveErr error
}

func (r *stubRepo) Load(ctx context.Context, db *gorm.DB) (*domain.Record, error) {
	return r.inner.Load(ctx, db)
}

func (r *stubRepo) Save(ctx context.Context, db *gorm.DB, record *domain.Record) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	return r.inner.Save(ctx, db, record)
}

type fixture struct {
	svc   domain.Service
	repo  *stubRepo
	audit auditdomain.Recorder
	db    *gorm.DB
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Record{}))

	defaults, err := config.NewDefaultsHolder(config.Config{})
	require.NoError(t, err)

	fake := clock.NewFakeClock(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC))
	recorder := auditservice.NewRecorder(auditservice.Params{Log: zap.NewNop(), Clock: fake})
	repo := &stubRepo{inner: repository.Provide()}

	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		Clock:    fake,
		Repo:     repo,
		Defaults: defaults,
		Audit:    recorder,
	})

	return &fixture{svc: svc, repo: repo, audit: recorder, db: db}
}

func adminCtx() context.Context {
	return actorctx.WithActor(context.Background(), "admin@example.com")
}

func testSettings() domain.Settings {
	return domain.FromExternal(domain.External{
		GoldRates:  map[string]float64{"22K": 7000, "24K": 7600},
		SilverRate: 100,
		HeroImage:  "https://example.com/hero.jpg",
		Categories: []string{"Gold", "Silver"},
		Purities:   []string{"24K", "22K"},
	})
}

func TestLoadSeedsEmptyStoreFromDefaults(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.Load(context.Background()))

	current := f.svc.Current()
	assert.Equal(t, 6650.0, current.GoldRates[catalogdomain.Purity22K])
	assert.Equal(t, 7255.0, current.GoldRates[catalogdomain.Purity24K])
	assert.Equal(t, 95.0, current.SilverRate)

	// The seeded value was persisted, not just held in memory.
	var count int64
	require.NoError(t, f.db.Model(&domain.Record{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLoadReadsExistingRecord(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Load(context.Background()))
	require.NoError(t, f.svc.Save(adminCtx(), testSettings()))

	// A fresh service over the same store sees the saved value.
	fake := clock.NewFakeClock(time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC))
	svc := New(Params{
		DB:       f.db,
		Log:      zap.NewNop(),
		Clock:    fake,
		Repo:     &stubRepo{inner: repository.Provide()},
		Defaults: mustDefaults(t),
		Audit:    auditservice.NewRecorder(auditservice.Params{Log: zap.NewNop(), Clock: fake}),
	})
	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, 7000.0, svc.Current().GoldRates[catalogdomain.Purity22K])
}

func mustDefaults(t *testing.T) *config.DefaultsHolder {
	t.Helper()
	defaults, err := config.NewDefaultsHolder(config.Config{})
	require.NoError(t, err)
	return defaults
}

func TestSaveAppliesAndAudits(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Load(context.Background()))

	require.NoError(t, f.svc.Save(adminCtx(), testSettings()))

	assert.Equal(t, 7600.0, f.svc.Current().GoldRates[catalogdomain.Purity24K])

	logs := f.audit.List()
	require.Len(t, logs, 1)
	assert.Equal(t, auditdomain.ActionSettingsUpdate, logs[0].Action)
	assert.Equal(t, auditdomain.EntitySettings, logs[0].Entity)
}

func TestSaveRejectsNegativeRates(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Load(context.Background()))

	bad := testSettings()
	bad.GoldRates[catalogdomain.Purity22K] = -1
	assert.ErrorIs(t, f.svc.Save(adminCtx(), bad), domain.ErrInvalidRates)

	bad = testSettings()
	bad.SilverRate = -5
	assert.ErrorIs(t, f.svc.Save(adminCtx(), bad), domain.ErrInvalidRates)
}

func TestSaveRollsBackOnStoreFailure(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Load(context.Background()))
	before := f.svc.Current()

	f.repo.saveErr = errors.New("store down")
	err := f.svc.Save(adminCtx(), testSettings())
	require.Error(t, err)

	// In-memory value restored, nothing audited.
	assert.Equal(t, before.GoldRates, f.svc.Current().GoldRates)
	assert.Equal(t, before.SilverRate, f.svc.Current().SilverRate)
	assert.Empty(t, f.audit.List())
}

func TestRateTableMatchesCurrent(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Load(context.Background()))

	rates := f.svc.RateTable()
	assert.Equal(t, 6650.0, rates.Gold[catalogdomain.Purity22K])
	assert.Equal(t, 95.0, rates.Silver)

	// The table is a copy; mutating it must not leak back.
	rates.Gold[catalogdomain.Purity22K] = 1
	assert.Equal(t, 6650.0, f.svc.RateTable().Gold[catalogdomain.Purity22K])
}

func TestExternalRoundTrip(t *testing.T) {
	settings := testSettings()
	roundTripped := domain.FromExternal(settings.ToExternal())
	assert.Equal(t, settings, roundTripped)
}
