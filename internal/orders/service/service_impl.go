package service

import (
	"context"
	"fmt"
	"strings"

	auditdomain "github.com/abiramijewels/aurum/internal/audit/domain"
	"github.com/abiramijewels/aurum/internal/orders/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Repo  domain.Repository
	Audit auditdomain.Recorder
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	audit auditdomain.Recorder
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("orders.service"),
		repo:  p.Repo,
		audit: p.Audit,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	id = strings.TrimSpace(id)
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	order, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	if err := s.repo.UpdateStatus(ctx, s.db, id, status); err != nil {
		return nil, err
	}

	order.Status = status
	s.audit.Record(ctx, auditdomain.ActionUpdate, auditdomain.EntityOrder, order.ID, fmt.Sprintf("Set status to %s", status))
	return order, nil
}
