package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService struct {
	Users *repository.UserRepository
	Roles *repository.RoleRepository
}

func NewAccountService(users *repository.UserRepository, roles *repository.RoleRepository) *AccountService {
	return &AccountService{Users: users, Roles: roles}
}

type RegisterIn struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register creates an account and auto-joins it to the Customer group.
// Used both by public registration and by manager-created accounts.
func (s *AccountService) Register(in *RegisterIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, Invalid("username", "this field is required")
	}

	n, err := s.Users.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrConflict
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:  username,
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Password:  string(hashed),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}

	customer, err := s.Roles.FindByName(entity.RoleCustomer)
	if err != nil {
		return nil, err
	}
	if err := s.Roles.AddMember(user, customer); err != nil {
		return nil, err
	}
	return s.Users.FindByID(user.ID)
}

// List hides SysAdmin accounts from non-admin callers.
func (s *AccountService) List(includeAdmins bool) ([]entity.User, error) {
	if includeAdmins {
		return s.Users.List()
	}
	return s.Users.List(entity.RoleSysAdmin)
}

func (s *AccountService) Get(id uint) (*entity.User, error) {
	u, err := s.Users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

type UpdateAccountIn struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
}

func (s *AccountService) Update(id uint, in *UpdateAccountIn) (*entity.User, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*in.LastName)
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}
	if len(updates) > 0 {
		if err := s.Users.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *AccountService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Users.Delete(id)
}
