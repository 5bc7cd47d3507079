package services

import (
	"strings"
	"sync"

	"philharmonic-tickets/internal/models"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// memStore is an in-memory implementation of the repository interfaces used
// by the services. A single mutex spans the order-creation read-check-write
// sequence, mirroring the transactional guarantee of the real store.
type memStore struct {
	mu          sync.Mutex
	users       map[int]*models.User
	events      map[int]*models.Event
	orders      []*models.Order
	nextUserID  int
	nextEventID int
	nextOrderID int
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[int]*models.User),
		events:      make(map[int]*models.Event),
		nextUserID:  1,
		nextEventID: 1,
		nextOrderID: 1,
	}
}

func (s *memStore) Create(req *models.UserCreateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == req.Username {
			return nil, models.ErrUsernameTaken
		}
	}

	user := &models.User{
		ID:           s.nextUserID,
		Username:     req.Username,
		PasswordHash: req.PasswordHash,
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         req.Role,
	}
	s.users[user.ID] = user
	s.nextUserID++

	copied := *user
	return &copied, nil
}

func (s *memStore) GetByID(id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *memStore) GetByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (s *memStore) UpdateProfile(id int, fullName, email *string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	if fullName != nil {
		user.FullName = *fullName
	}
	if email != nil {
		user.Email = *email
	}
	copied := *user
	return &copied, nil
}

func (s *memStore) UpdatePassword(id int, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (s *memStore) createEvent(req *models.EventCreateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := &models.Event{
		ID:               s.nextEventID,
		Title:            req.Title,
		Description:      req.Description,
		Date:             req.Date,
		Price:            req.Price,
		AvailableTickets: req.AvailableTickets,
		ImageURL:         req.ImageURL,
	}
	s.events[event.ID] = event
	s.nextEventID++

	copied := *event
	return &copied, nil
}

func (s *memStore) getEvent(id int) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (s *memStore) listEvents() ([]*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]*models.Event, 0, len(s.events))
	for id := 1; id < s.nextEventID; id++ {
		if event, ok := s.events[id]; ok {
			copied := *event
			events = append(events, &copied)
		}
	}
	return events, nil
}

func (s *memStore) updateEvent(id int, req *models.EventUpdateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	req.Apply(event)
	copied := *event
	return &copied, nil
}

func (s *memStore) deleteEvent(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return models.ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *memStore) createOrder(userID, eventID, ticketsCount int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	if event.AvailableTickets < ticketsCount {
		return nil, models.ErrInsufficientTickets
	}
	event.AvailableTickets -= ticketsCount

	order := &models.Order{
		ID:           s.nextOrderID,
		UserID:       userID,
		EventID:      eventID,
		OrderNumber:  models.GenerateOrderNumber(),
		TicketsCount: ticketsCount,
		TotalPrice:   event.Price * float64(ticketsCount),
	}
	s.orders = append(s.orders, order)
	s.nextOrderID++

	copied := *order
	return &copied, nil
}

func (s *memStore) getOrder(id int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			copied := *o
			return &copied, nil
		}
	}
	return nil, models.ErrOrderNotFound
}

func (s *memStore) ordersByUser(userID int) ([]*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []*models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			copied := *o
			orders = append(orders, &copied)
		}
	}
	return orders, nil
}

func (s *memStore) allOrders() ([]*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]*models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		copied := *o
		orders = append(orders, &copied)
	}
	return orders, nil
}

// memEventRepo adapts memStore to the EventRepository interface
type memEventRepo struct{ store *memStore }

func (r *memEventRepo) Create(req *models.EventCreateRequest) (*models.Event, error) {
	return r.store.createEvent(req)
}
func (r *memEventRepo) GetByID(id int) (*models.Event, error) { return r.store.getEvent(id) }
func (r *memEventRepo) List() ([]*models.Event, error)        { return r.store.listEvents() }
func (r *memEventRepo) SearchByTitle(keyword string) ([]*models.Event, error) {
	all, _ := r.store.listEvents()
	var matched []*models.Event
	for _, e := range all {
		if containsFold(e.Title, keyword) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}
func (r *memEventRepo) Update(id int, req *models.EventUpdateRequest) (*models.Event, error) {
	return r.store.updateEvent(id, req)
}
func (r *memEventRepo) Delete(id int) error { return r.store.deleteEvent(id) }

// memOrderRepo adapts memStore to the OrderRepository interface
type memOrderRepo struct{ store *memStore }

func (r *memOrderRepo) Create(userID, eventID, ticketsCount int) (*models.Order, error) {
	return r.store.createOrder(userID, eventID, ticketsCount)
}
func (r *memOrderRepo) GetByID(id int) (*models.Order, error)        { return r.store.getOrder(id) }
func (r *memOrderRepo) GetByUser(userID int) ([]*models.Order, error) { return r.store.ordersByUser(userID) }
func (r *memOrderRepo) GetAll() ([]*models.Order, error)             { return r.store.allOrders() }
