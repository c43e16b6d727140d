package repositories

import (
	"database/sql"
	"fmt"

	"eventify/internal/models"
)

// EventRepository handles event data operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, title, description, location, category, image_url,
	start_date, end_date, price, total_seats, available_seats`

func scanEvent(row *sql.Row) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.Category,
		&event.ImageURL,
		&event.StartDate,
		&event.EndDate,
		&event.Price,
		&event.TotalSeats,
		&event.AvailableSeats,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Create inserts a new event and fills in its generated id
func (r *EventRepository) Create(event *models.Event) error {
	query := `
		INSERT INTO events (title, description, location, category, image_url,
			start_date, end_date, price, total_seats, available_seats)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.Exec(
		query,
		event.Title,
		event.Description,
		event.Location,
		event.Category,
		event.ImageURL,
		event.StartDate,
		event.EndDate,
		event.Price,
		event.TotalSeats,
		event.AvailableSeats,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new event id: %w", err)
	}
	event.ID = int(id)

	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id int) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`

	event, err := scanEvent(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// List returns all events ordered by id
func (r *EventRepository) List() ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Location,
			&event.Category,
			&event.ImageURL,
			&event.StartDate,
			&event.EndDate,
			&event.Price,
			&event.TotalSeats,
			&event.AvailableSeats,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// Update replaces the stored row with the event's current field values
func (r *EventRepository) Update(event *models.Event) error {
	query := `
		UPDATE events
		SET title = ?, description = ?, location = ?, category = ?, image_url = ?,
			start_date = ?, end_date = ?, price = ?, total_seats = ?, available_seats = ?
		WHERE id = ?`

	result, err := r.db.Exec(
		query,
		event.Title,
		event.Description,
		event.Location,
		event.Category,
		event.ImageURL,
		event.StartDate,
		event.EndDate,
		event.Price,
		event.TotalSeats,
		event.AvailableSeats,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return models.ErrEventNotFound
	}

	return nil
}

// Delete removes an event by ID
func (r *EventRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return models.ErrEventNotFound
	}

	return nil
}

// DecrementSeats atomically claims one seat for the event inside the given
// transaction. The guard makes the seat check and the write a single
// statement: when no seats remain zero rows are affected and ErrSoldOut is
// returned. Callers must have already established that the event exists.
func (r *EventRepository) DecrementSeats(tx *sql.Tx, eventID int) error {
	result, err := tx.Exec(
		"UPDATE events SET available_seats = available_seats - 1 WHERE id = ? AND available_seats > 0",
		eventID,
	)
	if err != nil {
		return fmt.Errorf("failed to decrement seats: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check decrement result: %w", err)
	}
	if affected == 0 {
		return models.ErrSoldOut
	}

	return nil
}
