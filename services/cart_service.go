package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

// Get returns the customer's cart (created lazily) plus the on-demand
// total. The total is never stored.
func (s *CartService) Get(customerID uint) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetWithItems(customerID)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	for _, it := range c.Items {
		total += it.TotalPrice
	}
	return c, total, nil
}

type AddItemIn struct {
	FoodItemID uint `json:"id" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// AddItem creates the unique line for (customer, food item), freezing the
// unit and total price at add time. A second add for the same food item is
// a conflict; the caller updates the existing line's quantity instead.
func (s *CartService) AddItem(customerID uint, in *AddItemIn) (*entity.CartItem, error) {
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return nil, Invalid("quantity", "a positive integer is required")
	}

	food, err := s.MenuRepo.GetItem(in.FoodItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.CartRepo.FindLine(customerID, in.FoodItemID); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart, err := s.CartRepo.GetOrCreate(customerID)
	if err != nil {
		return nil, err
	}

	line := &entity.CartItem{
		CartID:     cart.ID,
		CustomerID: customerID,
		FoodItemID: food.ID,
		Quantity:   qty,
		UnitPrice:  food.Cost,
		TotalPrice: food.Cost * int64(qty),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.CreateItem(tx, line)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// UpdateQuantity recomputes the line total from the frozen unit price; the
// live catalog price is never consulted again.
func (s *CartService) UpdateQuantity(customerID, itemID uint, qty int, scopeToCustomer bool) (*entity.CartItem, error) {
	if qty < 1 {
		return nil, Invalid("quantity", "field requires a valid integer")
	}
	item, err := s.getItemScoped(customerID, itemID, scopeToCustomer)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateItemQuantity(tx, item.ID, qty)
	})
	if err != nil {
		return nil, err
	}
	return s.CartRepo.GetItem(item.ID)
}

func (s *CartService) GetItem(customerID, itemID uint, scopeToCustomer bool) (*entity.CartItem, error) {
	return s.getItemScoped(customerID, itemID, scopeToCustomer)
}

// ListItems returns the caller's lines, or everyone's for managers.
func (s *CartService) ListItems(customerID uint, scopeToCustomer bool) ([]entity.CartItem, error) {
	if scopeToCustomer {
		return s.CartRepo.ListItems(customerID)
	}
	return s.CartRepo.ListItems(0)
}

// AttachItem places an existing line into the customer's cart
// (POST /cart with a line id).
func (s *CartService) AttachItem(customerID, itemID uint) error {
	item, err := s.getItemScoped(customerID, itemID, true)
	if err != nil {
		return err
	}
	cart, err := s.CartRepo.GetOrCreate(customerID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.AttachItem(tx, cart.ID, item.ID)
	})
}

// RemoveItem deletes one line. The lookup reports not found when the named
// id is absent from the caller's scope; the delete itself is idempotent.
func (s *CartService) RemoveItem(customerID, itemID uint, scopeToCustomer bool) error {
	item, err := s.getItemScoped(customerID, itemID, scopeToCustomer)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, item.CustomerID, item.ID)
	})
}

// Clear empties the customer's cart. Idempotent.
func (s *CartService) Clear(customerID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearItems(tx, customerID)
	})
}

func (s *CartService) getItemScoped(customerID, itemID uint, scopeToCustomer bool) (*entity.CartItem, error) {
	var (
		item *entity.CartItem
		err  error
	)
	if scopeToCustomer {
		item, err = s.CartRepo.GetItemForCustomer(customerID, itemID)
	} else {
		item, err = s.CartRepo.GetItem(itemID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}
