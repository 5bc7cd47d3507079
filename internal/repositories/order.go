package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"philharmonic-tickets/internal/models"
)

// OrderRepository handles order data operations
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = "id, user_id, event_id, order_number, tickets_count, total_price, created_at"

// Create places an order inside a single transaction: the conditional
// decrement only matches when enough tickets remain, which serializes
// concurrent orders on the event row and rules out overselling. The price
// returned by the decrement is the price at purchase time and fixes the
// order's total. Either both the decrement and the insert commit, or
// neither does.
func (r *OrderRepository) Create(userID, eventID, ticketsCount int) (*models.Order, error) {
	if ticketsCount < 1 {
		return nil, fmt.Errorf("%w: tickets count must be at least 1", models.ErrInvalidInput)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var price float64
	err = tx.QueryRow(`
		UPDATE events
		SET available_tickets = available_tickets - $2, updated_at = $3
		WHERE id = $1 AND available_tickets >= $2
		RETURNING price`,
		eventID, ticketsCount, time.Now(),
	).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		// No row matched: the event is either missing or short on stock.
		var exists bool
		if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check event existence: %w", err)
		}
		if !exists {
			return nil, models.ErrEventNotFound
		}
		return nil, models.ErrInsufficientTickets
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reserve tickets: %w", err)
	}

	order := &models.Order{}
	err = tx.QueryRow(`
		INSERT INTO orders (user_id, event_id, order_number, tickets_count, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+orderColumns,
		userID,
		eventID,
		models.GenerateOrderNumber(),
		ticketsCount,
		price*float64(ticketsCount),
		time.Now(),
	).Scan(
		&order.ID,
		&order.UserID,
		&order.EventID,
		&order.OrderNumber,
		&order.TicketsCount,
		&order.TotalPrice,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order creation: %w", err)
	}

	return order, nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order := &models.Order{}
	err := r.db.QueryRow(query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.EventID,
		&order.OrderNumber,
		&order.TicketsCount,
		&order.TotalPrice,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

// GetByUser returns the orders owned by a user, oldest first
func (r *OrderRepository) GetByUser(userID int) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at ASC, id ASC`
	return r.queryOrders(query, userID)
}

// GetAll returns every order, oldest first
func (r *OrderRepository) GetAll() ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at ASC, id ASC`
	return r.queryOrders(query)
}

func (r *OrderRepository) queryOrders(query string, args ...interface{}) ([]*models.Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.EventID,
			&order.OrderNumber,
			&order.TicketsCount,
			&order.TotalPrice,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}
