package repository

import (
	"context"

	"github.com/abiramijewels/aurum/internal/orders/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Order, error) {
	var items []domain.Order
	err := db.WithContext(ctx).Raw(
		`SELECT id, customer_name, customer_email, date, total, status, items, user_id
		 FROM orders ORDER BY date DESC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Order, error) {
	var o domain.Order
	err := db.WithContext(ctx).Raw(
		`SELECT id, customer_name, customer_email, date, total, status, items, user_id
		 FROM orders WHERE id = ?`,
		id,
	).Scan(&o).Error
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		return nil, nil
	}
	return &o, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status domain.Status) error {
	result := db.WithContext(ctx).Exec(
		`UPDATE orders SET status = ? WHERE id = ?`,
		status,
		id,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
