package domain

import "time"

type Customer struct {
	ID         string    `json:"id" gorm:"primaryKey;type:text"`
	Name       string    `json:"name" gorm:"type:text;not null"`
	Email      string    `json:"email" gorm:"type:text;not null"`
	JoinDate   time.Time `json:"join_date" gorm:"not null"`
	Phone      string    `json:"phone" gorm:"type:text"`
	OrderCount int       `json:"order_count" gorm:"not null;default:0"`
	TotalSpent float64   `json:"total_spent" gorm:"not null;default:0"`
}

func (Customer) TableName() string { return "customers" }
