package repository

import (
	"context"

	"github.com/abiramijewels/aurum/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Product, error) {
	var items []domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, sku, category, description, images, video, price,
		        weight, purity, stock, making_charges, deleted_at, created_at, updated_at
		 FROM products ORDER BY created_at ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO products (id, name, sku, category, description, images, video, price,
		                       weight, purity, stock, making_charges, deleted_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID,
		product.Name,
		product.SKU,
		product.Category,
		product.Description,
		product.Images,
		product.Video,
		product.Price,
		product.Weight,
		product.Purity,
		product.Stock,
		product.MakingCharges,
		product.DeletedAt,
		product.CreatedAt,
		product.UpdatedAt,
	).Error
}

func (r *repo) Replace(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	result := db.WithContext(ctx).Exec(
		`UPDATE products
		 SET name = ?, sku = ?, category = ?, description = ?, images = ?, video = ?,
		     price = ?, weight = ?, purity = ?, stock = ?, making_charges = ?,
		     deleted_at = ?, updated_at = ?
		 WHERE id = ?`,
		product.Name,
		product.SKU,
		product.Category,
		product.Description,
		product.Images,
		product.Video,
		product.Price,
		product.Weight,
		product.Purity,
		product.Stock,
		product.MakingCharges,
		product.DeletedAt,
		product.UpdatedAt,
		product.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Exec(`DELETE FROM products WHERE id = ?`, id).Error
}
