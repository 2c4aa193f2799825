package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// PurchaseService exposes the read side of completed checkouts: the
// transactions and their snapshot lines. They are historical records, so
// the only writes are management-only corrections and deletions.
type PurchaseService struct {
	Repo *repository.OrderRepository
}

func NewPurchaseService(repo *repository.OrderRepository) *PurchaseService {
	return &PurchaseService{Repo: repo}
}

func (s *PurchaseService) ListForCustomer(customerID uint) ([]entity.Transaction, error) {
	return s.Repo.ListTransactionsForCustomer(customerID)
}

func (s *PurchaseService) GetForCustomer(customerID, id uint) (*entity.Transaction, error) {
	t, err := s.Repo.GetTransactionForCustomer(customerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return t, err
}

// Delete refuses to remove a transaction an order still references; the
// order record would lose its permanent 1:1 checkout link.
func (s *PurchaseService) Delete(id uint) error {
	if _, err := s.Repo.GetTransaction(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	n, err := s.Repo.CountOrdersForTransaction(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	return s.Repo.DeleteTransaction(id)
}

// ---------------- Purchase items ----------------

func (s *PurchaseService) ListItemsForCustomer(customerID uint) ([]entity.TransactionItem, error) {
	return s.Repo.ListTransactionItemsForCustomer(customerID)
}

func (s *PurchaseService) GetItemForCustomer(customerID, id uint) (*entity.TransactionItem, error) {
	it, err := s.Repo.GetTransactionItemForCustomer(customerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return it, err
}

type PurchaseItemUpdateIn struct {
	Quantity  *int   `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice *int64 `json:"unitPrice" binding:"omitempty,min=0"`
}

// UpdateItem is a manager-only correction; the total is kept consistent
// with whatever quantity and unit price end up stored.
func (s *PurchaseService) UpdateItem(id uint, in *PurchaseItemUpdateIn) (*entity.TransactionItem, error) {
	it, err := s.Repo.GetTransactionItem(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	qty := it.Quantity
	unit := it.UnitPrice
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	if in.UnitPrice != nil {
		unit = *in.UnitPrice
	}
	updates := map[string]any{
		"quantity":    qty,
		"unit_price":  unit,
		"total_price": unit * int64(qty),
	}
	if err := s.Repo.UpdateTransactionItem(id, updates); err != nil {
		return nil, err
	}
	return s.Repo.GetTransactionItem(id)
}

func (s *PurchaseService) DeleteItem(id uint) error {
	if _, err := s.Repo.GetTransactionItem(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.DeleteTransactionItem(id)
}
