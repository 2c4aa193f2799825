package services

import (
	"errors"
	"testing"

	"backend/entity"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedRoles(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, name := range entity.RoleNames {
		if err := db.Create(&entity.Role{Name: name}).Error; err != nil {
			t.Fatalf("seed role %s: %v", name, err)
		}
	}
}

func newAccountService(db *gorm.DB) *AccountService {
	return NewAccountService(repository.NewUserRepository(db), repository.NewRoleRepository(db))
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db)
	svc := newAccountService(db)

	u, err := svc.Register(&RegisterIn{
		Username: "alice",
		Email:    "  Alice@Example.COM ",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email = %q, want normalized lowercase", u.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")); err != nil {
		t.Error("stored password does not verify against the input")
	}

	// Every registration lands in the Customer group.
	var inCustomer bool
	for _, r := range u.Roles {
		if r.Name == entity.RoleCustomer {
			inCustomer = true
		}
	}
	if !inCustomer {
		t.Errorf("roles = %v, want Customer membership", u.Roles)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db)
	svc := newAccountService(db)

	if _, err := svc.Register(&RegisterIn{Username: "alice", Password: "secret1"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(&RegisterIn{Username: "alice", Password: "other12"}); !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestRegisterBlankUsername(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db)
	svc := newAccountService(db)

	var ve *ValidationError
	if _, err := svc.Register(&RegisterIn{Username: "   ", Password: "secret1"}); !errors.As(err, &ve) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}

func TestListHidesAdmins(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db)
	svc := newAccountService(db)
	groups := newGroupService(db)

	if _, err := svc.Register(&RegisterIn{Username: "alice", Password: "secret1"}); err != nil {
		t.Fatalf("register alice: %v", err)
	}
	root, err := svc.Register(&RegisterIn{Username: "root", Password: "secret1"})
	if err != nil {
		t.Fatalf("register root: %v", err)
	}
	if _, err := groups.AddMember(entity.RoleSysAdmin, root.ID); err != nil {
		t.Fatalf("promote root: %v", err)
	}

	visible, err := svc.List(false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(visible) != 1 || visible[0].Username != "alice" {
		t.Errorf("non-admin listing = %v, want alice only", visible)
	}

	all, err := svc.List(true)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin listing = %d users, want 2", len(all))
	}
}

func TestUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db)
	svc := newAccountService(db)

	u, err := svc.Register(&RegisterIn{Username: "alice", Password: "secret1", FirstName: "Alice"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	last := "Lemon"
	got, err := svc.Update(u.ID, &UpdateAccountIn{LastName: &last})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.FirstName != "Alice" || got.LastName != "Lemon" {
		t.Errorf("name = %q %q, want untouched Alice plus new Lemon", got.FirstName, got.LastName)
	}

	if _, err := svc.Update(9999, &UpdateAccountIn{LastName: &last}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user err = %v, want ErrNotFound", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db)
	svc := newAccountService(db)

	u, err := svc.Register(&RegisterIn{Username: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Delete(u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(u.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(u.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestUsernameReusableAfterDelete(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db)
	svc := newAccountService(db)

	u, err := svc.Register(&RegisterIn{Username: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Delete(u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// The dead account must not keep the name, nor any live roles a
	// leftover token could resolve.
	names, err := svc.Users.RolesOf(u.ID)
	if err != nil || len(names) != 0 {
		t.Errorf("roles of deleted user = (%v, %v), want none", names, err)
	}
	again, err := svc.Register(&RegisterIn{Username: "alice", Password: "secret2"})
	if err != nil {
		t.Fatalf("re-register after delete: %v", err)
	}
	if again.ID == u.ID {
		t.Error("re-registration reused the deleted account row")
	}
}
