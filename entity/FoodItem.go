package entity

import (
	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	Name string `gorm:"index;not null" json:"name"`
	// Cost in cents. Cart and transaction lines snapshot it; changing it
	// here never touches existing lines.
	Cost     int64 `json:"cost"`
	Featured bool  `json:"featured"`

	CategoryID uint         `gorm:"not null" json:"categoryId"`
	Category   FoodCategory `json:"-"`
}
