package entity

import (
	"gorm.io/gorm"
)

// Role names form a closed set, seeded at startup.
const (
	RoleSysAdmin     = "SysAdmin"
	RoleManager      = "Manager"
	RoleDeliveryCrew = "Delivery Crew"
	RoleCustomer     = "Customer"
)

// RoleNames lists every role the system knows, in seed order.
var RoleNames = []string{RoleSysAdmin, RoleManager, RoleDeliveryCrew, RoleCustomer}

type Role struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_roles;" json:"-"`
}
