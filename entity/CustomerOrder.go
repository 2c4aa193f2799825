package entity

import (
	"gorm.io/gorm"
)

// CustomerOrder is the fulfillment record tied 1:1 to a transaction.
// Only the delivery assignment and the delivered flag ever mutate;
// Delivered is terminal.
type CustomerOrder struct {
	gorm.Model
	CustomerID uint `gorm:"index" json:"customerId"`
	Customer   User `json:"-"`

	TransactionID uint        `gorm:"uniqueIndex" json:"transactionId"`
	Transaction   Transaction `json:"-"`

	DeliveryPersonID *uint `json:"deliveryPersonId"`
	DeliveryPerson   *User `gorm:"foreignKey:DeliveryPersonID" json:"-"`

	IsDelivered bool  `gorm:"index" json:"isDelivered"`
	OrderTotal  int64 `json:"orderTotal"`
}
