package entity

import (
	"gorm.io/gorm"
)

// Transaction records a completed checkout. Immutable once created.
type Transaction struct {
	gorm.Model
	Reference string `gorm:"uniqueIndex;not null" json:"reference"`

	CustomerID uint `gorm:"index" json:"customerId"`
	Customer   User `json:"-"`

	Items []TransactionItem `json:"items" gorm:"foreignKey:TransactionID"`
}
