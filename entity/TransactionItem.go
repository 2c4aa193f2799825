package entity

import (
	"gorm.io/gorm"
)

// TransactionItem is a verbatim snapshot of a cart line at checkout time.
type TransactionItem struct {
	gorm.Model
	TransactionID uint        `json:"transactionId"`
	Transaction   Transaction `json:"-"`

	CustomerID uint `gorm:"index" json:"customerId"`
	Customer   User `json:"-"`

	FoodItemID uint     `json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`

	Quantity   int   `json:"quantity"`
	UnitPrice  int64 `json:"unitPrice"`
	TotalPrice int64 `json:"totalPrice"`
}
