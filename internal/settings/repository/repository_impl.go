package repository

import (
	"context"
	"errors"

	"github.com/abiramijewels/aurum/internal/settings/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Load(ctx context.Context, db *gorm.DB) (*domain.Record, error) {
	var record domain.Record
	err := db.WithContext(ctx).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, record *domain.Record) error {
	if record == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(record).Error
}
