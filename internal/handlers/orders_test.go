package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"philharmonic-tickets/internal/middleware"
	"philharmonic-tickets/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderService struct {
	order  *models.Order
	orders []*models.Order
	err    error

	lastIdentity models.Identity
	lastRequest  *models.OrderCreateRequest
}

func (s *stubOrderService) CreateOrder(identity models.Identity, req *models.OrderCreateRequest) (*models.Order, error) {
	s.lastIdentity = identity
	s.lastRequest = req
	return s.order, s.err
}

func (s *stubOrderService) ListUserOrders(identity models.Identity) ([]*models.Order, error) {
	s.lastIdentity = identity
	return s.orders, s.err
}

func (s *stubOrderService) ListAllOrders() ([]*models.Order, error) {
	return s.orders, s.err
}

func sampleOrder() *models.Order {
	return &models.Order{
		ID:           1,
		UserID:       3,
		EventID:      5,
		OrderNumber:  "ORD-20261120-a1b2c3d4",
		TicketsCount: 2,
		TotalPrice:   170.0,
		CreatedAt:    time.Date(2026, 11, 20, 10, 0, 0, 0, time.UTC),
	}
}

func authedRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	identity := models.Identity{Username: "maria.callas", Role: models.RoleUser}
	return req.WithContext(middleware.WithIdentity(req.Context(), identity))
}

func TestOrdersHandler_Create(t *testing.T) {
	stub := &stubOrderService{order: sampleOrder()}
	handler := NewOrdersHandler(stub)

	req := authedRequest(http.MethodPost, "/api/orders", `{"event_id":5,"tickets_count":2}`)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "maria.callas", stub.lastIdentity.Username)
	assert.Equal(t, 5, stub.lastRequest.EventID)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, 170.0, order.TotalPrice)
}

func TestOrdersHandler_Create_NoIdentity(t *testing.T) {
	stub := &stubOrderService{order: sampleOrder()}
	handler := NewOrdersHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"event_id":5,"tickets_count":2}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, stub.lastRequest)
}

func TestOrdersHandler_Create_SoldOut(t *testing.T) {
	stub := &stubOrderService{err: models.ErrInsufficientTickets}
	handler := NewOrdersHandler(stub)

	req := authedRequest(http.MethodPost, "/api/orders", `{"event_id":5,"tickets_count":200}`)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestOrdersHandler_Create_UnknownEvent(t *testing.T) {
	stub := &stubOrderService{err: models.ErrEventNotFound}
	handler := NewOrdersHandler(stub)

	req := authedRequest(http.MethodPost, "/api/orders", `{"event_id":999,"tickets_count":1}`)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrdersHandler_ListMine(t *testing.T) {
	stub := &stubOrderService{orders: []*models.Order{sampleOrder()}}
	handler := NewOrdersHandler(stub)

	req := authedRequest(http.MethodGet, "/api/orders", "")
	rec := httptest.NewRecorder()

	handler.ListMine(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "maria.callas", stub.lastIdentity.Username)

	var orders []*models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
}

func TestOrdersHandler_ListMine_Empty(t *testing.T) {
	handler := NewOrdersHandler(&stubOrderService{})

	req := authedRequest(http.MethodGet, "/api/orders", "")
	rec := httptest.NewRecorder()

	handler.ListMine(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestOrdersHandler_ListAll(t *testing.T) {
	stub := &stubOrderService{orders: []*models.Order{sampleOrder(), sampleOrder()}}
	handler := NewOrdersHandler(stub)

	rec := httptest.NewRecorder()
	handler.ListAll(rec, httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var orders []*models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
}
