package domain

import (
	"context"

	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context) ([]Customer, error)
}

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]Customer, error)
}
