package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type GroupService struct {
	Users *repository.UserRepository
	Roles *repository.RoleRepository
}

func NewGroupService(users *repository.UserRepository, roles *repository.RoleRepository) *GroupService {
	return &GroupService{Users: users, Roles: roles}
}

func (s *GroupService) List(includeAdmin bool) ([]entity.Role, error) {
	return s.Roles.List(includeAdmin)
}

func (s *GroupService) Create(name string) (*entity.Role, error) {
	if _, err := s.Roles.FindByName(name); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	role := &entity.Role{Name: name}
	if err := s.Roles.DB.Create(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

func (s *GroupService) Get(id uint) (*entity.Role, error) {
	role, err := s.Roles.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return role, err
}

func (s *GroupService) Rename(id uint, name string) (*entity.Role, error) {
	role, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	role.Name = name
	if err := s.Roles.DB.Save(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

// Delete removes the group and its membership rows for good; the unique
// name frees up for a later re-creation.
func (s *GroupService) Delete(id uint) error {
	role, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.Roles.DB.Unscoped().Select("Users").Delete(role).Error
}

// Members lists a role group the way the role-scoped account endpoints do:
// lower-role listings hide users who also hold a higher role.
func (s *GroupService) Members(roleName string) ([]entity.User, error) {
	switch roleName {
	case entity.RoleSysAdmin:
		return s.Roles.ListMembers(roleName)
	case entity.RoleManager:
		return s.Roles.ListMembers(roleName, entity.RoleSysAdmin)
	default:
		return s.Roles.ListMembers(roleName, entity.RoleSysAdmin, entity.RoleManager)
	}
}

func (s *GroupService) AddMember(roleName string, userID uint) (*entity.User, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	role, err := s.Roles.FindByName(roleName)
	if err != nil {
		return nil, err
	}
	if err := s.Roles.AddMember(user, role); err != nil {
		return nil, err
	}
	return s.Users.FindByID(userID)
}

// RemoveMember is a no-op (still 200) when the user was not a member.
func (s *GroupService) RemoveMember(roleName string, userID uint) error {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	role, err := s.Roles.FindByName(roleName)
	if err != nil {
		return err
	}
	return s.Roles.RemoveMember(user, role)
}
