package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedRoles creates the closed role set. Safe to run on every start.
func SeedRoles() error {
	db := DB()
	for _, name := range entity.RoleNames {
		if err := db.FirstOrCreate(&entity.Role{}, entity.Role{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the first SysAdmin account from the environment.
func SeedAdmin(username, password string) error {
	db := DB()
	if username == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:  username,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	var role entity.Role
	if err := db.Where("name = ?", entity.RoleSysAdmin).First(&role).Error; err != nil {
		return err
	}
	return db.Model(&admin).Association("Roles").Append(&role)
}
