package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	// One line per (customer, food item) pair.
	CustomerID uint `gorm:"uniqueIndex:idx_customer_food" json:"customerId"`
	Customer   User `json:"-"`

	FoodItemID uint     `gorm:"uniqueIndex:idx_customer_food" json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`

	Quantity int `json:"quantity"`
	// Snapshots taken at add time, in cents. Catalog price changes do not
	// propagate here.
	UnitPrice  int64 `json:"unitPrice"`
	TotalPrice int64 `json:"totalPrice"`
}
