package models

import (
	"fmt"
	"net/url"
	"time"
)

// Event represents a concert in the catalog
type Event struct {
	ID               int       `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Description      string    `json:"description" db:"description"`
	Date             time.Time `json:"date" db:"date"`
	Price            float64   `json:"price" db:"price"`
	AvailableTickets int       `json:"available_tickets" db:"available_tickets"`
	ImageURL         string    `json:"image_url" db:"image_url"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// EventCreateRequest represents the data needed to create a new event
type EventCreateRequest struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date"`
	Price            float64   `json:"price"`
	AvailableTickets int       `json:"available_tickets"`
	ImageURL         string    `json:"image_url"`
}

// EventUpdateRequest carries a partial event update. Only non-nil fields
// overwrite the stored values.
type EventUpdateRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Date             *time.Time `json:"date"`
	Price            *float64   `json:"price"`
	AvailableTickets *int       `json:"available_tickets"`
	ImageURL         *string    `json:"image_url"`
}

// Validate validates event creation data
func (req *EventCreateRequest) Validate() error {
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if len(req.Title) > 255 {
		return fmt.Errorf("%w: title must be less than 255 characters", ErrInvalidInput)
	}

	if len(req.Description) > 1000 {
		return fmt.Errorf("%w: description must be less than 1000 characters", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.AvailableTickets < 0 {
		return fmt.Errorf("%w: available tickets must not be negative", ErrInvalidInput)
	}

	return validateImageURL(req.ImageURL)
}

// Validate validates a partial event update
func (req *EventUpdateRequest) Validate() error {
	if req.Title == nil && req.Description == nil && req.Date == nil &&
		req.Price == nil && req.AvailableTickets == nil && req.ImageURL == nil {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if req.Title != nil && (*req.Title == "" || len(*req.Title) > 255) {
		return fmt.Errorf("%w: title must be 1-255 characters", ErrInvalidInput)
	}

	if req.Description != nil && len(*req.Description) > 1000 {
		return fmt.Errorf("%w: description must be less than 1000 characters", ErrInvalidInput)
	}

	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.AvailableTickets != nil && *req.AvailableTickets < 0 {
		return fmt.Errorf("%w: available tickets must not be negative", ErrInvalidInput)
	}

	if req.ImageURL != nil {
		return validateImageURL(*req.ImageURL)
	}

	return nil
}

// Apply copies the non-nil fields of the update onto the event
func (req *EventUpdateRequest) Apply(event *Event) {
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Price != nil {
		event.Price = *req.Price
	}
	if req.AvailableTickets != nil {
		event.AvailableTickets = *req.AvailableTickets
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
}

func validateImageURL(imageURL string) error {
	if imageURL == "" {
		return nil
	}

	u, err := url.Parse(imageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: image url must be an http(s) url", ErrInvalidInput)
	}

	return nil
}
