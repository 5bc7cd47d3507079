package services

import (
	"philharmonic-tickets/internal/models"
)

// OrderRepository interface for order data operations. Create must be
// atomic: the inventory decrement and the order insert either both take
// effect or neither does, and a decrement that would drive availability
// negative fails with ErrInsufficientTickets.
type OrderRepository interface {
	Create(userID, eventID, ticketsCount int) (*models.Order, error)
	GetByID(id int) (*models.Order, error)
	GetByUser(userID int) ([]*models.Order, error)
	GetAll() ([]*models.Order, error)
}

// OrderService handles order placement and listing. The identity passed into
// every method is the verified (username, role) pair resolved by the
// transport layer.
type OrderService struct {
	orderRepo OrderRepository
	userRepo  UserRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo OrderRepository, userRepo UserRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

// CreateOrder places an order for the identified user. The ticket count is
// validated up front; the stock check, decrement, price snapshot, and order
// insert happen atomically in the repository. A session referencing a user
// that no longer exists fails with ErrUserNotFound.
func (s *OrderService) CreateOrder(identity models.Identity, req *models.OrderCreateRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(identity.Username)
	if err != nil {
		return nil, err
	}

	return s.orderRepo.Create(user.ID, req.EventID, req.TicketsCount)
}

// ListUserOrders returns the orders owned by the identified user, oldest
// first
func (s *OrderService) ListUserOrders(identity models.Identity) ([]*models.Order, error) {
	user, err := s.userRepo.GetByUsername(identity.Username)
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByUser(user.ID)
}

// ListAllOrders returns every order, oldest first. Authorization is the
// transport layer's responsibility; this method assumes the caller's role
// was already checked.
func (s *OrderService) ListAllOrders() ([]*models.Order, error) {
	return s.orderRepo.GetAll()
}
