package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
}

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]Order, error)
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Order, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id string, status Status) error
}

var (
	ErrNotFound      = errors.New("not_found")
	ErrInvalidStatus = errors.New("invalid_status")
)
