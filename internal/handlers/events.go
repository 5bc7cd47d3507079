package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"philharmonic-tickets/internal/models"

	"github.com/go-chi/chi/v5"
)

// EventService is the surface of the catalog service used by the handler
type EventService interface {
	List() ([]*models.Event, error)
	Search(keyword string) ([]*models.Event, error)
	Get(id int) (*models.Event, error)
	Create(req *models.EventCreateRequest) (*models.Event, error)
	Update(id int, req *models.EventUpdateRequest) (*models.Event, error)
	Delete(id int) error
}

// EventsHandler handles catalog endpoints
type EventsHandler struct {
	events EventService
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(events EventService) *EventsHandler {
	return &EventsHandler{events: events}
}

// List handles GET /api/events, optionally filtered with ?search=
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		events []*models.Event
		err    error
	)

	if search := r.URL.Query().Get("search"); search != "" {
		events, err = h.events.Search(search)
	} else {
		events, err = h.events.List()
	}
	if err != nil {
		writeError(w, err)
		return
	}

	if events == nil {
		events = []*models.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// Get handles GET /api/events/{id}
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	event, err := h.events.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// Create handles POST /api/admin/events
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.EventCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	event, err := h.events.Create(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// Update handles PUT /api/admin/events/{id}
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req models.EventUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	event, err := h.events.Update(id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// Delete handles DELETE /api/admin/events/{id}
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.events.Delete(id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func eventID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid event id", models.ErrInvalidInput)
	}
	return id, nil
}
