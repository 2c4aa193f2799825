package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.CustomerOrder) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.CustomerOrder, error) {
	var o entity.CustomerOrder
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForCustomer(customerID, orderID uint) (*entity.CustomerOrder, error) {
	var o entity.CustomerOrder
	err := r.DB.Where("id = ? AND customer_id = ?", orderID, customerID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForDelivery(deliveryPersonID, orderID uint) (*entity.CustomerOrder, error) {
	var o entity.CustomerOrder
	err := r.DB.Where("id = ? AND delivery_person_id = ?", orderID, deliveryPersonID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrders() ([]entity.CustomerOrder, error) {
	var out []entity.CustomerOrder
	err := r.DB.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrdersForCustomer(customerID uint) ([]entity.CustomerOrder, error) {
	var out []entity.CustomerOrder
	err := r.DB.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrdersForDelivery(deliveryPersonID uint) ([]entity.CustomerOrder, error) {
	var out []entity.CustomerOrder
	err := r.DB.Where("delivery_person_id = ?", deliveryPersonID).Order("created_at DESC").Find(&out).Error
	return out, err
}

// SetDeliveredGuard flips the delivered flag only when the order is still
// in the expected state; the affected-row count tells the caller whether
// the transition actually happened. Delivered is terminal.
func (r *OrderRepository) SetDeliveredGuard(tx *gorm.DB, orderID uint, from, to bool) (int64, error) {
	res := tx.Model(&entity.CustomerOrder{}).
		Where("id = ? AND is_delivered = ?", orderID, from).
		Update("is_delivered", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) AssignDelivery(tx *gorm.DB, orderID, deliveryPersonID uint) error {
	return tx.Model(&entity.CustomerOrder{}).
		Where("id = ?", orderID).
		Update("delivery_person_id", deliveryPersonID).Error
}

func (r *OrderRepository) DeleteOrder(orderID uint) error {
	return r.DB.Delete(&entity.CustomerOrder{}, orderID).Error
}

// ---------------- Transactions (purchases) ----------------

func (r *OrderRepository) CreateTransaction(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Create(t).Error
}

func (r *OrderRepository) CreateTransactionItem(tx *gorm.DB, it *entity.TransactionItem) error {
	return tx.Create(it).Error
}

func (r *OrderRepository) GetTransaction(id uint) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := r.DB.Preload("Items").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *OrderRepository) GetTransactionForCustomer(customerID, id uint) (*entity.Transaction, error) {
	var t entity.Transaction
	err := r.DB.Where("id = ? AND customer_id = ?", id, customerID).Preload("Items").First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *OrderRepository) ListTransactionsForCustomer(customerID uint) ([]entity.Transaction, error) {
	var out []entity.Transaction
	err := r.DB.Where("customer_id = ?", customerID).Preload("Items").
		Order("created_at DESC").Find(&out).Error
	return out, err
}

// CountOrdersForTransaction guards transaction deletion: a transaction
// referenced by an order is a permanent record.
func (r *OrderRepository) CountOrdersForTransaction(transactionID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.CustomerOrder{}).
		Where("transaction_id = ?", transactionID).Count(&n).Error
	return n, err
}

func (r *OrderRepository) DeleteTransaction(id uint) error {
	return r.DB.Delete(&entity.Transaction{}, id).Error
}

// ---------------- Transaction items (purchase items) ----------------

func (r *OrderRepository) GetTransactionItem(id uint) (*entity.TransactionItem, error) {
	var it entity.TransactionItem
	if err := r.DB.First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *OrderRepository) GetTransactionItemForCustomer(customerID, id uint) (*entity.TransactionItem, error) {
	var it entity.TransactionItem
	err := r.DB.Where("id = ? AND customer_id = ?", id, customerID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *OrderRepository) ListTransactionItemsForCustomer(customerID uint) ([]entity.TransactionItem, error) {
	var out []entity.TransactionItem
	err := r.DB.Where("customer_id = ?", customerID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) UpdateTransactionItem(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.TransactionItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *OrderRepository) DeleteTransactionItem(id uint) error {
	return r.DB.Delete(&entity.TransactionItem{}, id).Error
}
