package entity

import (
	"gorm.io/gorm"
)

// Cart is 1:1 with its customer and is created lazily on first access.
type Cart struct {
	gorm.Model
	CustomerID uint `gorm:"uniqueIndex" json:"customerId"`
	Customer   User `json:"-"`

	Items []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
