package services

import (
	"fmt"
	"testing"

	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. cache=shared keeps every
// pooled connection on the same database; the name keeps tests isolated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.FoodCategory{},
		&entity.FoodItem{},
		&entity.Cart{},
		&entity.CartItem{},
		&entity.Transaction{},
		&entity.TransactionItem{},
		&entity.CustomerOrder{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Password: "x"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

var seedSeq int

func seedFood(t *testing.T, db *gorm.DB, name string, cost int64) *entity.FoodItem {
	t.Helper()
	seedSeq++
	cat := &entity.FoodCategory{Name: "Mains", Slug: fmt.Sprintf("mains-%s-%d", name, seedSeq)}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	f := &entity.FoodItem{Name: name, Cost: cost, CategoryID: cat.ID}
	if err := db.Create(f).Error; err != nil {
		t.Fatalf("seed food %s: %v", name, err)
	}
	return f
}
