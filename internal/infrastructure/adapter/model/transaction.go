package model

import (
	"time"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;index"`
	Type          string    `gorm:"not null;size:10"`
	Tag           string    `gorm:"not null;size:50"`
	AmountInCents int64     `gorm:"not null"`
	Description   string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null;index"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
