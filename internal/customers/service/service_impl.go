package service

import (
	"context"

	"github.com/abiramijewels/aurum/internal/customers/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("customers.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.FindAll(ctx, s.db)
}
