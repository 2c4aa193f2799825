package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreate returns the customer's cart, creating an empty one on first
// access. Idempotent: one cart per customer, ever.
func (r *CartRepository) GetOrCreate(customerID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("customer_id = ?", customerID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{CustomerID: customerID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// GetWithItems loads the cart and its lines; the caller sums line totals
// on demand, the cart never stores one.
func (r *CartRepository) GetWithItems(customerID uint) (*entity.Cart, error) {
	c, err := r.GetOrCreate(customerID)
	if err != nil {
		return nil, err
	}
	err = r.DB.Preload("Items").First(c, c.ID).Error
	return c, err
}

// Get returns the cart and its lines without creating it, reading through
// the caller's transaction handle so the snapshot and the later clear see
// the same rows. ErrRecordNotFound when the customer has never touched a
// cart.
func (r *CartRepository) Get(tx *gorm.DB, customerID uint) (*entity.Cart, error) {
	var c entity.Cart
	if err := tx.Where("customer_id = ?", customerID).Preload("Items").First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindLine looks up the unique line for a (customer, food item) pair.
func (r *CartRepository) FindLine(customerID, foodItemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.Where("customer_id = ? AND food_item_id = ?", customerID, foodItemID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) GetItem(itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	if err := r.DB.First(&it, itemID).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) GetItemForCustomer(customerID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.Where("id = ? AND customer_id = ?", itemID, customerID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// ListItems returns a customer's lines; customerID 0 lists everyone's
// (manager view).
func (r *CartRepository) ListItems(customerID uint) ([]entity.CartItem, error) {
	q := r.DB.Order("id DESC")
	if customerID != 0 {
		q = q.Where("customer_id = ?", customerID)
	}
	var items []entity.CartItem
	err := q.Find(&items).Error
	return items, err
}

func (r *CartRepository) CreateItem(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Create(it).Error
}

// UpdateItemQuantity recomputes the line total from the frozen unit price,
// never from the live catalog.
func (r *CartRepository) UpdateItemQuantity(tx *gorm.DB, itemID uint, qty int) error {
	return tx.Exec(`
		UPDATE cart_items
		   SET quantity = ?, total_price = unit_price * ?
		 WHERE id = ?
	`, qty, qty, itemID).Error
}

func (r *CartRepository) AttachItem(tx *gorm.DB, cartID, itemID uint) error {
	return tx.Model(&entity.CartItem{}).Where("id = ?", itemID).Update("cart_id", cartID).Error
}

// Cart lines are working state, not history: deletes are hard so the
// (customer, food item) unique index frees up for a later re-add.
func (r *CartRepository) RemoveItem(tx *gorm.DB, customerID, itemID uint) error {
	return tx.Unscoped().Where("id = ? AND customer_id = ?", itemID, customerID).
		Delete(&entity.CartItem{}).Error
}

// ClearItems hard-deletes every line the customer owns. Idempotent.
func (r *CartRepository) ClearItems(tx *gorm.DB, customerID uint) error {
	return tx.Unscoped().Where("customer_id = ?", customerID).Delete(&entity.CartItem{}).Error
}
