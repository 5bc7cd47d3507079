package handlers

import (
	"net/http"

	"philharmonic-tickets/internal/middleware"
	"philharmonic-tickets/internal/models"
)

// OrderService is the surface of the order service used by the handler
type OrderService interface {
	CreateOrder(identity models.Identity, req *models.OrderCreateRequest) (*models.Order, error)
	ListUserOrders(identity models.Identity) ([]*models.Order, error)
	ListAllOrders() ([]*models.Order, error)
}

// OrdersHandler handles order placement and listing endpoints
type OrdersHandler struct {
	orders OrderService
}

// NewOrdersHandler creates a new orders handler
func NewOrdersHandler(orders OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Create handles POST /api/orders
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrInvalidCredentials)
		return
	}

	var req models.OrderCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// ListMine handles GET /api/orders
func (h *OrdersHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrInvalidCredentials)
		return
	}

	orders, err := h.orders.ListUserOrders(identity)
	if err != nil {
		writeError(w, err)
		return
	}

	if orders == nil {
		orders = []*models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// ListAll handles GET /api/admin/orders
func (h *OrdersHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListAllOrders()
	if err != nil {
		writeError(w, err)
		return
	}

	if orders == nil {
		orders = []*models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}
