package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Roles").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Roles").Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&n).Error
	return n, err
}

// List returns all accounts, minus members of excludeRoles (non-admin
// callers never see SysAdmin accounts).
func (r *UserRepository) List(excludeRoles ...string) ([]entity.User, error) {
	q := r.DB.Preload("Roles")
	if len(excludeRoles) > 0 {
		q = q.Where(`users.id NOT IN (
			SELECT ur.user_id FROM user_roles ur
			JOIN roles ON roles.id = ur.role_id
			WHERE roles.name IN ?)`, excludeRoles)
	}
	var users []entity.User
	err := q.Order("username").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the account for good: the membership rows go first so
// RolesOf never resolves roles for a dead user, and the hard delete frees
// the username for re-registration.
func (r *UserRepository) Delete(id uint) error {
	user := entity.User{Model: gorm.Model{ID: id}}
	if err := r.DB.Model(&user).Association("Roles").Clear(); err != nil {
		return err
	}
	return r.DB.Unscoped().Delete(&user).Error
}

// RolesOf satisfies policy.RoleSource: live membership, re-read on every
// call. A missing user simply has no roles.
func (r *UserRepository) RolesOf(userID uint) ([]string, error) {
	var names []string
	err := r.DB.Model(&entity.Role{}).
		Joins("JOIN user_roles ur ON ur.role_id = roles.id").
		Where("ur.user_id = ?", userID).
		Pluck("roles.name", &names).Error
	return names, err
}
