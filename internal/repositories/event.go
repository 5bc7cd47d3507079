package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"philharmonic-tickets/internal/models"
)

// EventRepository handles event data operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = "id, title, description, date, price, available_tickets, image_url, created_at, updated_at"

func scanEventRow(row *sql.Row) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Price,
		&event.AvailableTickets,
		&event.ImageURL,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Create creates a new event
func (r *EventRepository) Create(req *models.EventCreateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO events (title, description, date, price, available_tickets, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + eventColumns

	event, err := scanEventRow(r.db.QueryRow(
		query,
		req.Title,
		req.Description,
		req.Date,
		req.Price,
		req.AvailableTickets,
		req.ImageURL,
		time.Now(),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id int) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEventRow(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// List returns all events ordered by date
func (r *EventRepository) List() ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date ASC, id ASC`
	return r.queryEvents(query)
}

// SearchByTitle returns events whose title contains the keyword,
// case-insensitive
func (r *EventRepository) SearchByTitle(keyword string) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE title ILIKE $1 ORDER BY date ASC, id ASC`
	return r.queryEvents(query, "%"+keyword+"%")
}

func (r *EventRepository) queryEvents(query string, args ...interface{}) ([]*models.Event, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Date,
			&event.Price,
			&event.AvailableTickets,
			&event.ImageURL,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// Update applies the non-nil fields of the update request
func (r *EventRepository) Update(id int, req *models.EventUpdateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := `
		UPDATE events
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    date = COALESCE($4, date),
		    price = COALESCE($5, price),
		    available_tickets = COALESCE($6, available_tickets),
		    image_url = COALESCE($7, image_url),
		    updated_at = $8
		WHERE id = $1
		RETURNING ` + eventColumns

	event, err := scanEventRow(r.db.QueryRow(
		query,
		id,
		req.Title,
		req.Description,
		req.Date,
		req.Price,
		req.AvailableTickets,
		req.ImageURL,
		time.Now(),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// Delete deletes an event by ID. A missing id is an error, matching the
// behavior of the rest of the catalog operations.
func (r *EventRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrEventNotFound
	}

	return nil
}
