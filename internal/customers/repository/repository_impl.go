package repository

import (
	"context"

	"github.com/abiramijewels/aurum/internal/customers/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Customer, error) {
	var items []domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, email, join_date, phone, order_count, total_spent
		 FROM customers ORDER BY join_date ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
