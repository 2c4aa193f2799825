package services

import (
	"errors"

	"backend/entity"
	"backend/policy"
	"backend/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, userRepo *repository.UserRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

// Checkout converts the customer's cart into an immutable transaction plus
// an order, then empties the cart. The cart is read inside the same DB
// transaction that clears it: a line landing concurrently is either
// snapshotted or left in the cart, never silently dropped.
func (s *OrderService) Checkout(customerID uint) (*entity.CustomerOrder, error) {
	var order *entity.CustomerOrder
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.Get(tx, customerID)
		if err != nil {
			return err
		}

		trx := &entity.Transaction{
			Reference:  uuid.NewString(),
			CustomerID: customerID,
		}
		if err := s.Repo.CreateTransaction(tx, trx); err != nil {
			return err
		}

		// Cart lines carry frozen prices; copy them verbatim.
		var total int64
		for _, line := range cart.Items {
			item := &entity.TransactionItem{
				TransactionID: trx.ID,
				CustomerID:    line.CustomerID,
				FoodItemID:    line.FoodItemID,
				Quantity:      line.Quantity,
				UnitPrice:     line.UnitPrice,
				TotalPrice:    line.TotalPrice,
			}
			if err := s.Repo.CreateTransactionItem(tx, item); err != nil {
				return err
			}
			total += line.TotalPrice
		}

		o := &entity.CustomerOrder{
			CustomerID:    customerID,
			TransactionID: trx.ID,
			OrderTotal:    total,
		}
		if err := s.Repo.CreateOrder(tx, o); err != nil {
			return err
		}

		if err := s.CartRepo.ClearItems(tx, customerID); err != nil {
			return err
		}
		order = o
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// List applies the role visibility rules: managers and admins see all,
// delivery staff see orders assigned to them, customers their own. The
// precedence matters for multi-role users and matches the policy table.
func (s *OrderService) List(actor policy.Actor) ([]entity.CustomerOrder, error) {
	switch {
	case actor.HasAny(entity.RoleSysAdmin, entity.RoleManager):
		return s.Repo.ListOrders()
	case actor.Has(entity.RoleDeliveryCrew):
		return s.Repo.ListOrdersForDelivery(actor.ID)
	case actor.Has(entity.RoleCustomer):
		return s.Repo.ListOrdersForCustomer(actor.ID)
	default:
		return nil, ErrForbidden
	}
}

// Get resolves an order within the actor's visibility scope. Out of scope
// is indistinguishable from absent.
func (s *OrderService) Get(actor policy.Actor, orderID uint) (*entity.CustomerOrder, error) {
	var (
		o   *entity.CustomerOrder
		err error
	)
	switch {
	case actor.HasAny(entity.RoleSysAdmin, entity.RoleManager):
		o, err = s.Repo.GetOrder(orderID)
	case actor.Has(entity.RoleDeliveryCrew):
		o, err = s.Repo.GetOrderForDelivery(actor.ID, orderID)
	case actor.Has(entity.RoleCustomer):
		o, err = s.Repo.GetOrderForCustomer(actor.ID, orderID)
	default:
		return nil, ErrForbidden
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return o, err
}

// SetDeliveryStatus accepts exactly 0 or 1. Delivered is terminal: setting
// 1 twice is idempotent, setting 0 on a delivered order is a conflict.
func (s *OrderService) SetDeliveryStatus(orderID uint, status int) (*entity.CustomerOrder, error) {
	if status != 0 && status != 1 {
		return nil, Invalid("status", "requires a valid integer (0 or 1)")
	}
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	switch {
	case status == 1 && !o.IsDelivered:
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			affected, err := s.Repo.SetDeliveredGuard(tx, o.ID, false, true)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrConflict
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	case status == 0 && o.IsDelivered:
		return nil, ErrConflict
	}
	return s.Repo.GetOrder(orderID)
}

// AssignDeliveryPerson sets or replaces the assignee. Any existing user
// may be assigned; membership in the Delivery Crew group is not required.
func (s *OrderService) AssignDeliveryPerson(orderID, deliveryPersonID uint) (*entity.CustomerOrder, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.UserRepo.FindByID(deliveryPersonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.AssignDelivery(tx, o.ID, deliveryPersonID)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(orderID)
}

func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.DeleteOrder(orderID)
}
