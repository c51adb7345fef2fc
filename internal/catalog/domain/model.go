package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Category string

const (
	CategoryGold     Category = "Gold"
	CategorySilver   Category = "Silver"
	CategoryCovering Category = "Covering"
)

type Purity string

const (
	Purity24K      Purity = "24K"
	Purity22K      Purity = "22K"
	PuritySterling Purity = "92.5 Sterling"
)

// State is the lifecycle state derived from DeletedAt. A purged product has
// no record at all, so it is never observable as a state.
type State string

const (
	StateActive   State = "active"
	StateArchived State = "archived"
)

type Product struct {
	ID            string                      `json:"id" gorm:"primaryKey;type:text"`
	Name          string                      `json:"name" gorm:"type:text;not null"`
	SKU           *string                     `json:"sku,omitempty" gorm:"column:sku;type:text"`
	Category      Category                    `json:"category" gorm:"type:text;not null"`
	Description   string                      `json:"description" gorm:"type:text"`
	Images        datatypes.JSONSlice[string] `json:"images"`
	Video         *string                     `json:"video,omitempty" gorm:"type:text"`
	Price         float64                     `json:"price" gorm:"not null"`
	Weight        *float64                    `json:"weight,omitempty"`
	Purity        *Purity                     `json:"purity,omitempty" gorm:"type:text"`
	Stock         *int                        `json:"stock,omitempty"`
	MakingCharges *float64                    `json:"making_charges,omitempty"`
	DeletedAt     *time.Time                  `json:"deleted_at,omitempty" gorm:"column:deleted_at"`
	CreatedAt     time.Time                   `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time                   `json:"updated_at" gorm:"not null"`
}

func (Product) TableName() string { return "products" }

func (p Product) State() State {
	if p.DeletedAt != nil {
		return StateArchived
	}
	return StateActive
}
