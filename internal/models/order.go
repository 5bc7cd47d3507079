package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order represents a confirmed ticket purchase. Orders are immutable once
// created: the stored total price and ticket count are a snapshot taken at
// purchase time and never change, even if the event is later updated or
// deleted.
type Order struct {
	ID           int       `json:"id" db:"id"`
	UserID       int       `json:"user_id" db:"user_id"`
	EventID      int       `json:"event_id" db:"event_id"`
	OrderNumber  string    `json:"order_number" db:"order_number"`
	TicketsCount int       `json:"tickets_count" db:"tickets_count"`
	TotalPrice   float64   `json:"total_price" db:"total_price"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// OrderCreateRequest represents the data needed to place an order
type OrderCreateRequest struct {
	EventID      int `json:"event_id"`
	TicketsCount int `json:"tickets_count"`
}

// Validate validates order creation data
func (req *OrderCreateRequest) Validate() error {
	if req.EventID <= 0 {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	if req.TicketsCount < 1 {
		return fmt.Errorf("%w: tickets count must be at least 1", ErrInvalidInput)
	}

	return nil
}

// GenerateOrderNumber generates a unique, human-readable order reference
func GenerateOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), uuid.NewString()[:8])
}
