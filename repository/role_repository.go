package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type RoleRepository struct{ DB *gorm.DB }

func NewRoleRepository(db *gorm.DB) *RoleRepository { return &RoleRepository{DB: db} }

func (r *RoleRepository) FindByID(id uint) (*entity.Role, error) {
	var role entity.Role
	if err := r.DB.First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepository) FindByName(name string) (*entity.Role, error) {
	var role entity.Role
	if err := r.DB.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// List returns every role; the SysAdmin group stays hidden from
// non-admin callers.
func (r *RoleRepository) List(includeAdmin bool) ([]entity.Role, error) {
	q := r.DB.Order("name")
	if !includeAdmin {
		q = q.Where("name <> ?", entity.RoleSysAdmin)
	}
	var roles []entity.Role
	err := q.Find(&roles).Error
	return roles, err
}

func (r *RoleRepository) AddMember(user *entity.User, role *entity.Role) error {
	return r.DB.Model(user).Association("Roles").Append(role)
}

// RemoveMember is a no-op when the user was not a member.
func (r *RoleRepository) RemoveMember(user *entity.User, role *entity.Role) error {
	return r.DB.Model(user).Association("Roles").Delete(role)
}

// ListMembers returns the users holding roleName, minus anyone who also
// holds one of excludeRoles. The exclusions mirror the role-scoped account
// listings: the delivery and customer listings hide admins and managers,
// the manager listing hides admins.
func (r *RoleRepository) ListMembers(roleName string, excludeRoles ...string) ([]entity.User, error) {
	q := r.DB.Model(&entity.User{}).
		Select("users.*").
		Joins("JOIN user_roles ur ON ur.user_id = users.id").
		Joins("JOIN roles ON roles.id = ur.role_id").
		Where("roles.name = ?", roleName).
		Preload("Roles")
	if len(excludeRoles) > 0 {
		q = q.Where(`users.id NOT IN (
			SELECT ur2.user_id FROM user_roles ur2
			JOIN roles r2 ON r2.id = ur2.role_id
			WHERE r2.name IN ?)`, excludeRoles)
	}
	var users []entity.User
	err := q.Order("users.username").Find(&users).Error
	return users, err
}
