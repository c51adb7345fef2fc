package service

import (
	"context"
	"sync"

	auditdomain "github.com/abiramijewels/aurum/internal/audit/domain"
	catalogdomain "github.com/abiramijewels/aurum/internal/catalog/domain"
	"github.com/abiramijewels/aurum/internal/clock"
	"github.com/abiramijewels/aurum/internal/config"
	"github.com/abiramijewels/aurum/internal/pricing"
	"github.com/abiramijewels/aurum/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const settingsRecordID = 1

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Clock    clock.Clock
	Repo     domain.Repository
	Defaults *config.DefaultsHolder
	Audit    auditdomain.Recorder
}

// Service guards the process-wide settings value. Reads are served from
// memory; saves apply optimistically and roll back on store failure, the
// one deliberate asymmetry with the catalog's confirm-then-apply path.
type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	clock    clock.Clock
	repo     domain.Repository
	defaults *config.DefaultsHolder
	audit    auditdomain.Recorder

	mu      sync.RWMutex
	current domain.Settings
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("settings.service"),
		clock:    p.Clock,
		repo:     p.Repo,
		defaults: p.Defaults,
		audit:    p.Audit,
	}
}

func (s *Service) Load(ctx context.Context) error {
	record, err := s.repo.Load(ctx, s.db)
	if err != nil {
		return err
	}

	if record == nil {
		seeded := fromDefaults(s.defaults.Current())
		if err := s.repo.Save(ctx, s.db, s.toRecord(seeded)); err != nil {
			return err
		}
		s.mu.Lock()
		s.current = seeded
		s.mu.Unlock()
		s.log.Info("settings seeded from defaults")
		return nil
	}

	s.mu.Lock()
	s.current = fromRecord(record)
	s.mu.Unlock()
	s.log.Info("settings loaded")
	return nil
}

func (s *Service) Current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Service) RateTable() pricing.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gold := make(map[catalogdomain.Purity]float64, len(s.current.GoldRates))
	for purity, rate := range s.current.GoldRates {
		gold[purity] = rate
	}
	return pricing.RateTable{
		Gold:   gold,
		Silver: s.current.SilverRate,
	}
}

func (s *Service) Save(ctx context.Context, settings domain.Settings) error {
	for _, rate := range settings.GoldRates {
		if rate < 0 {
			return domain.ErrInvalidRates
		}
	}
	if settings.SilverRate < 0 {
		return domain.ErrInvalidRates
	}

	s.mu.Lock()
	previous := s.current
	s.current = settings
	s.mu.Unlock()

	if err := s.repo.Save(ctx, s.db, s.toRecord(settings)); err != nil {
		// Optimistic apply failed: restore the prior in-memory value.
		s.mu.Lock()
		s.current = previous
		s.mu.Unlock()
		s.log.Warn("settings save failed, rolled back", zap.Error(err))
		return err
	}

	s.audit.Record(ctx, auditdomain.ActionSettingsUpdate, auditdomain.EntitySettings, "app_settings", "Updated application settings")
	return nil
}

func (s *Service) toRecord(settings domain.Settings) *domain.Record {
	ext := settings.ToExternal()
	return &domain.Record{
		ID:                 settingsRecordID,
		GoldRates:          datatypes.NewJSONType(ext.GoldRates),
		SilverRate:         ext.SilverRate,
		HeroImage:          ext.HeroImage,
		Categories:         datatypes.NewJSONSlice(ext.Categories),
		Purities:           datatypes.NewJSONSlice(ext.Purities),
		ShowcaseCategories: datatypes.NewJSONSlice(ext.ShowcaseCategories),
		UpdatedAt:          s.clock.Now(),
	}
}

func fromRecord(record *domain.Record) domain.Settings {
	return domain.FromExternal(domain.External{
		GoldRates:          record.GoldRates.Data(),
		SilverRate:         record.SilverRate,
		HeroImage:          record.HeroImage,
		Categories:         record.Categories,
		Purities:           record.Purities,
		ShowcaseCategories: record.ShowcaseCategories,
	})
}

func fromDefaults(defaults config.StoreDefaults) domain.Settings {
	showcase := make([]domain.ShowcaseCategory, 0, len(defaults.ShowcaseCategories))
	for _, sc := range defaults.ShowcaseCategories {
		showcase = append(showcase, domain.ShowcaseCategory{Name: sc.Name, Image: sc.Image})
	}
	return domain.FromExternal(domain.External{
		GoldRates:          defaults.GoldRates,
		SilverRate:         defaults.SilverRate,
		HeroImage:          defaults.HeroImage,
		Categories:         defaults.Categories,
		Purities:           defaults.Purities,
		ShowcaseCategories: showcase,
	})
}
