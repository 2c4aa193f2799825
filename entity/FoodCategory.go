package entity

import (
	"gorm.io/gorm"
)

type FoodCategory struct {
	gorm.Model
	Name string `gorm:"index;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	// Delete is blocked while items still reference the category.
	Items []FoodItem `gorm:"foreignKey:CategoryID" json:"-"`
}
