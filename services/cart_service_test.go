package services

import (
	"errors"
	"testing"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func TestCartCreatedLazilyOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "alice")

	first, _, err := svc.Get(customer.ID)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	second, total, err := svc.Get(customer.ID)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("got two carts (%d, %d), want one", first.ID, second.ID)
	}
	if total != 0 {
		t.Errorf("empty cart total = %d, want 0", total)
	}

	var count int64
	db.Model(&entity.Cart{}).Where("customer_id = ?", customer.ID).Count(&count)
	if count != 1 {
		t.Errorf("cart rows = %d, want 1", count)
	}
}

func TestAddItemFreezesPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "alice")
	food := seedFood(t, db, "Bruschetta", 1250)

	line, err := svc.AddItem(customer.ID, &AddItemIn{FoodItemID: food.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if line.UnitPrice != 1250 || line.TotalPrice != 2500 {
		t.Fatalf("line priced %d/%d, want 1250/2500", line.UnitPrice, line.TotalPrice)
	}

	// A later catalog price change must not leak into the existing line.
	if err := db.Model(food).Update("cost", 9999).Error; err != nil {
		t.Fatalf("reprice catalog: %v", err)
	}
	updated, err := svc.UpdateQuantity(customer.ID, line.ID, 3, true)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if updated.UnitPrice != 1250 || updated.TotalPrice != 3750 {
		t.Errorf("line priced %d/%d after reprice, want 1250/3750", updated.UnitPrice, updated.TotalPrice)
	}
}

func TestAddItemDefaultsQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "alice")
	food := seedFood(t, db, "Soup", 700)

	line, err := svc.AddItem(customer.ID, &AddItemIn{FoodItemID: food.ID})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if line.Quantity != 1 || line.TotalPrice != 700 {
		t.Errorf("line = qty %d total %d, want qty 1 total 700", line.Quantity, line.TotalPrice)
	}
}

func TestAddItemDuplicateIsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "alice")
	food := seedFood(t, db, "Pasta", 1500)

	if _, err := svc.AddItem(customer.ID, &AddItemIn{FoodItemID: food.ID, Quantity: 1}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.AddItem(customer.ID, &AddItemIn{FoodItemID: food.ID, Quantity: 2}); !errors.Is(err, ErrConflict) {
		t.Errorf("second add err = %v, want ErrConflict", err)
	}
}

func TestAddItemUnknownFood(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "alice")

	if _, err := svc.AddItem(customer.ID, &AddItemIn{FoodItemID: 999}); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateQuantityRejectsNonPositive(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "alice")
	food := seedFood(t, db, "Salad", 900)

	line, err := svc.AddItem(customer.ID, &AddItemIn{FoodItemID: food.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	var ve *ValidationError
	if _, err := svc.UpdateQuantity(customer.ID, line.ID, 0, true); !errors.As(err, &ve) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}

func TestLinesAreCustomerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	food := seedFood(t, db, "Pizza", 1800)

	line, err := svc.AddItem(alice.ID, &AddItemIn{FoodItemID: food.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	// Another customer sees and touches nothing of it.
	if _, err := svc.GetItem(bob.ID, line.ID, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-customer get err = %v, want ErrNotFound", err)
	}
	if err := svc.RemoveItem(bob.ID, line.ID, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-customer remove err = %v, want ErrNotFound", err)
	}

	// The unscoped manager view sees everything.
	got, err := svc.GetItem(bob.ID, line.ID, false)
	if err != nil {
		t.Fatalf("manager get: %v", err)
	}
	if got.CustomerID != alice.ID {
		t.Errorf("line owner = %d, want %d", got.CustomerID, alice.ID)
	}

	if err := svc.RemoveItem(alice.ID, line.ID, true); err != nil {
		t.Fatalf("owner remove: %v", err)
	}
	if _, err := svc.GetItem(alice.ID, line.ID, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("removed line err = %v, want ErrNotFound", err)
	}
}

func TestReAddAfterRemove(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "alice")
	food := seedFood(t, db, "Pizza", 1800)

	line, err := svc.AddItem(customer.ID, &AddItemIn{FoodItemID: food.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := svc.RemoveItem(customer.ID, line.ID, true); err != nil {
		t.Fatalf("remove item: %v", err)
	}

	// The (customer, food item) pair is free again once the line is gone.
	readd, err := svc.AddItem(customer.ID, &AddItemIn{FoodItemID: food.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("re-add after remove: %v", err)
	}
	if readd.Quantity != 3 || readd.TotalPrice != 5400 {
		t.Errorf("re-added line = qty %d total %d, want 3/5400", readd.Quantity, readd.TotalPrice)
	}
}

func TestReAddAfterClear(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "alice")
	food := seedFood(t, db, "Soup", 700)

	if _, err := svc.AddItem(customer.ID, &AddItemIn{FoodItemID: food.ID, Quantity: 2}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := svc.Clear(customer.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := svc.AddItem(customer.ID, &AddItemIn{FoodItemID: food.ID, Quantity: 1}); err != nil {
		t.Fatalf("re-add after clear: %v", err)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, "alice")
	food := seedFood(t, db, "Tart", 600)

	if _, err := svc.AddItem(customer.ID, &AddItemIn{FoodItemID: food.ID, Quantity: 2}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := svc.Clear(customer.ID); err != nil {
		t.Fatalf("first clear: %v", err)
	}
	if err := svc.Clear(customer.ID); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	_, total, err := svc.Get(customer.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if total != 0 {
		t.Errorf("cleared cart total = %d, want 0", total)
	}
}
