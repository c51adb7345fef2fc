package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

type Item struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
}

type Order struct {
	ID            string                    `json:"id" gorm:"primaryKey;type:text"`
	CustomerName  string                    `json:"customer_name" gorm:"type:text;not null"`
	CustomerEmail string                    `json:"customer_email" gorm:"type:text;not null"`
	Date          time.Time                 `json:"date" gorm:"not null"`
	Total         float64                   `json:"total" gorm:"not null"`
	Status        Status                    `json:"status" gorm:"type:text;not null"`
	Items         datatypes.JSONSlice[Item] `json:"items"`
	UserID        *string                   `json:"user_id,omitempty" gorm:"type:text"`
}

func (Order) TableName() string { return "orders" }
