package domain

import (
	"context"
	"errors"

	"github.com/abiramijewels/aurum/internal/pricing"
	"gorm.io/gorm"
)

type Service interface {
	// Load pulls settings from the store once at startup, seeding the store
	// from the shipped defaults when it is empty.
	Load(ctx context.Context) error

	Current() Settings
	RateTable() pricing.RateTable

	// Save applies optimistically: the in-memory value is replaced first and
	// rolled back if the store rejects the write.
	Save(ctx context.Context, settings Settings) error
}

type Repository interface {
	Load(ctx context.Context, db *gorm.DB) (*Record, error)
	Save(ctx context.Context, db *gorm.DB, record *Record) error
}

var (
	ErrInvalidRates = errors.New("invalid_rates")
)
