package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Membership is a set; a user may hold several roles at once.
	Roles []Role `gorm:"many2many:user_roles;" json:"roles"`

	// Relations, preloaded only when needed.
	CartItems      []CartItem      `gorm:"foreignKey:CustomerID" json:"-"`
	Transactions   []Transaction   `gorm:"foreignKey:CustomerID" json:"-"`
	Orders         []CustomerOrder `gorm:"foreignKey:CustomerID" json:"-"`
	AssignedOrders []CustomerOrder `gorm:"foreignKey:DeliveryPersonID" json:"-"`
}
