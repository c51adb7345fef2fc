package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the product store. The service treats it as an external
// collaborator: a transition is applied locally only after the store call
// succeeds.
type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]Product, error)
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	Replace(ctx context.Context, db *gorm.DB, product *Product) error
	Delete(ctx context.Context, db *gorm.DB, id string) error
}
