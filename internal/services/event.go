package services

import (
	"philharmonic-tickets/internal/models"
)

// EventRepository interface for event data operations
type EventRepository interface {
	Create(req *models.EventCreateRequest) (*models.Event, error)
	GetByID(id int) (*models.Event, error)
	List() ([]*models.Event, error)
	SearchByTitle(keyword string) ([]*models.Event, error)
	Update(id int, req *models.EventUpdateRequest) (*models.Event, error)
	Delete(id int) error
}

// EventService handles catalog business logic
type EventService struct {
	eventRepo EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// List returns all events
func (s *EventService) List() ([]*models.Event, error) {
	return s.eventRepo.List()
}

// Search returns events whose title contains the keyword, case-insensitive
func (s *EventService) Search(keyword string) ([]*models.Event, error) {
	return s.eventRepo.SearchByTitle(keyword)
}

// Get returns a single event by id
func (s *EventService) Get(id int) (*models.Event, error) {
	return s.eventRepo.GetByID(id)
}

// Create adds a new event to the catalog
func (s *EventService) Create(req *models.EventCreateRequest) (*models.Event, error) {
	return s.eventRepo.Create(req)
}

// Update applies a partial update to an event
func (s *EventService) Update(id int, req *models.EventUpdateRequest) (*models.Event, error) {
	return s.eventRepo.Update(id, req)
}

// Delete removes an event from the catalog. Existing orders for the event
// are untouched.
func (s *EventService) Delete(id int) error {
	return s.eventRepo.Delete(id)
}
