package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"backend/configs"
	"backend/entity"
	"backend/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.Role{}, &entity.User{},
		&entity.FoodCategory{}, &entity.FoodItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Transaction{}, &entity.TransactionItem{}, &entity.CustomerOrder{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, name := range entity.RoleNames {
		if err := db.Create(&entity.Role{Name: name}).Error; err != nil {
			t.Fatalf("seed role %s: %v", name, err)
		}
	}

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func register(t *testing.T, r *gin.Engine, username string) {
	t.Helper()
	w := do(t, r, http.MethodPost, "/users", "", gin.H{"username": username, "password": "secret1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s = %d: %s", username, w.Code, w.Body.String())
	}
}

func login(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/auth/login", "", gin.H{"username": username, "password": "secret1"})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s = %d: %s", username, w.Code, w.Body.String())
	}
	token, _ := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("login %s returned no token", username)
	}
	return token
}

// seedStaff creates an account that never went through registration, so
// it holds exactly the given role and no Customer membership.
func seedStaff(t *testing.T, db *gorm.DB, username, roleName string) uint {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &entity.User{Username: username, Password: string(hashed)}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed %s: %v", username, err)
	}
	return promote(t, db, username, roleName)
}

func promote(t *testing.T, db *gorm.DB, username, roleName string) uint {
	t.Helper()
	users := repository.NewUserRepository(db)
	roles := repository.NewRoleRepository(db)
	u, err := users.FindByUsername(username)
	if err != nil {
		t.Fatalf("find %s: %v", username, err)
	}
	role, err := roles.FindByName(roleName)
	if err != nil {
		t.Fatalf("find role %s: %v", roleName, err)
	}
	if err := roles.AddMember(u, role); err != nil {
		t.Fatalf("promote %s: %v", username, err)
	}
	return u.ID
}

func dataID(t *testing.T, w *httptest.ResponseRecorder) uint {
	t.Helper()
	data, _ := decode(t, w)["data"].(map[string]any)
	id, _ := data["ID"].(float64)
	if id == 0 {
		t.Fatalf("response carries no id: %s", w.Body.String())
	}
	return uint(id)
}

// TestOrderingFlow walks the happy path end to end: registration, login,
// catalog setup, cart, checkout, assignment and delivery.
func TestOrderingFlow(t *testing.T) {
	r, db := newTestServer(t)

	register(t, r, "alice")
	register(t, r, "carol")
	seedStaff(t, db, "boss", entity.RoleManager)
	crewID := promote(t, db, "carol", entity.RoleDeliveryCrew)

	alice := login(t, r, "alice")
	boss := login(t, r, "boss")
	carol := login(t, r, "carol")

	// Catalog writes are management-only.
	w := do(t, r, http.MethodPost, "/menu-items", alice, gin.H{"name": "Pasta", "cost": 1500, "categoryId": 1})
	if w.Code != http.StatusForbidden {
		t.Fatalf("customer menu write = %d, want 403", w.Code)
	}
	w = do(t, r, http.MethodPost, "/categories", boss, gin.H{"name": "Mains", "slug": "mains"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category = %d: %s", w.Code, w.Body.String())
	}
	catID := dataID(t, w)
	w = do(t, r, http.MethodPost, "/menu-items", boss, gin.H{"name": "Pasta", "cost": 1500, "categoryId": catID})
	if w.Code != http.StatusCreated {
		t.Fatalf("create item = %d: %s", w.Code, w.Body.String())
	}
	foodID := dataID(t, w)

	// Customers read the catalog.
	if w = do(t, r, http.MethodGet, "/menu-items", alice, nil); w.Code != http.StatusOK {
		t.Fatalf("customer menu read = %d", w.Code)
	}

	// Cart: one line per food item, duplicate adds conflict.
	w = do(t, r, http.MethodPost, "/order-items", alice, gin.H{"id": foodID, "quantity": 2})
	if w.Code != http.StatusCreated {
		t.Fatalf("add line = %d: %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPost, "/order-items", alice, gin.H{"id": foodID, "quantity": 1})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate add = %d, want 409", w.Code)
	}
	w = do(t, r, http.MethodGet, "/cart", alice, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get cart = %d", w.Code)
	}
	if total, _ := decode(t, w)["total"].(float64); total != 3000 {
		t.Errorf("cart total = %v, want 3000", total)
	}

	// Managers have no cart of their own.
	if w = do(t, r, http.MethodGet, "/cart", boss, nil); w.Code != http.StatusForbidden {
		t.Fatalf("manager cart = %d, want 403", w.Code)
	}

	// Checkout empties the cart.
	w = do(t, r, http.MethodPost, "/orders", alice, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout = %d: %s", w.Code, w.Body.String())
	}
	orderID := dataID(t, w)
	w = do(t, r, http.MethodGet, "/cart", alice, nil)
	if total, _ := decode(t, w)["total"].(float64); total != 0 {
		t.Errorf("cart total after checkout = %v, want 0", total)
	}

	// An unassigned order is invisible to delivery staff.
	w = do(t, r, http.MethodPatch, urlOrder(orderID), carol, gin.H{"status": 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("crew patch unassigned = %d, want 404", w.Code)
	}

	// Manager assigns, crew delivers, delivery is terminal.
	w = do(t, r, http.MethodPatch, urlOrder(orderID), boss, gin.H{"assigned_delivery_person_id": crewID})
	if w.Code != http.StatusOK {
		t.Fatalf("assign = %d: %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPatch, urlOrder(orderID), carol, gin.H{"status": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("deliver = %d: %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPatch, urlOrder(orderID), carol, gin.H{"status": 0})
	if w.Code != http.StatusConflict {
		t.Fatalf("revert = %d, want 409", w.Code)
	}
	// Crew cannot reassign even their own order.
	w = do(t, r, http.MethodPatch, urlOrder(orderID), carol, gin.H{"assigned_delivery_person_id": crewID})
	if w.Code != http.StatusForbidden {
		t.Fatalf("crew reassign = %d, want 403", w.Code)
	}

	// Purchase history stays with the customer.
	w = do(t, r, http.MethodGet, "/purchases", alice, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("purchases = %d", w.Code)
	}
	if data, _ := decode(t, w)["data"].([]any); len(data) != 1 {
		t.Errorf("purchases = %d entries, want 1", len(data))
	}
}

func TestAuthRequired(t *testing.T) {
	r, _ := newTestServer(t)

	if w := do(t, r, http.MethodGet, "/orders", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous orders = %d, want 401", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/menu-items", "garbage", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token = %d, want 401", w.Code)
	}
	// Registration stays open.
	register(t, r, "alice")

	// An authenticated customer may not re-use the registration endpoint.
	alice := login(t, r, "alice")
	if w := do(t, r, http.MethodPost, "/users", alice, gin.H{"username": "eve", "password": "secret1"}); w.Code != http.StatusForbidden {
		t.Errorf("customer creates account = %d, want 403", w.Code)
	}
}

func urlOrder(id uint) string {
	return "/orders/" + strconv.FormatUint(uint64(id), 10)
}
