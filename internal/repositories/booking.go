package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventify/internal/models"
)

// BookingRepository handles booking data operations
type BookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// ErrDuplicateTicketCode is returned by CreateTx when the generated ticket
// code collides with an existing one; callers regenerate and retry.
var ErrDuplicateTicketCode = errors.New("duplicate ticket code")

const bookingSelect = `
	SELECT b.id, b.user_id, b.event_id, b.ticket_code, b.booking_date, b.status, b.amount_paid,
		u.id, u.name, u.email, u.role,
		e.id, e.title, e.description, e.location, e.category, e.image_url,
		e.start_date, e.end_date, e.price, e.total_seats, e.available_seats
	FROM bookings b
	LEFT JOIN users u ON u.id = b.user_id
	LEFT JOIN events e ON e.id = b.event_id`

type bookingScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row bookingScanner) (*models.Booking, error) {
	booking := &models.Booking{}

	var (
		userID    sql.NullInt64
		userName  sql.NullString
		userEmail sql.NullString
		userRole  sql.NullString

		eventID          sql.NullInt64
		eventTitle       sql.NullString
		eventDescription sql.NullString
		eventLocation    sql.NullString
		eventCategory    sql.NullString
		eventImageURL    sql.NullString
		eventStartDate   sql.NullTime
		eventEndDate     sql.NullTime
		eventPrice       sql.NullFloat64
		eventTotalSeats  sql.NullInt64
		eventAvailable   sql.NullInt64
	)

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.EventID,
		&booking.TicketCode,
		&booking.BookingDate,
		&booking.Status,
		&booking.AmountPaid,
		&userID,
		&userName,
		&userEmail,
		&userRole,
		&eventID,
		&eventTitle,
		&eventDescription,
		&eventLocation,
		&eventCategory,
		&eventImageURL,
		&eventStartDate,
		&eventEndDate,
		&eventPrice,
		&eventTotalSeats,
		&eventAvailable,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		booking.User = &models.User{
			ID:    int(userID.Int64),
			Name:  userName.String,
			Email: userEmail.String,
			Role:  models.UserRole(userRole.String),
		}
	}

	if eventID.Valid {
		booking.Event = &models.Event{
			ID:             int(eventID.Int64),
			Title:          eventTitle.String,
			Description:    eventDescription.String,
			Location:       eventLocation.String,
			Category:       eventCategory.String,
			ImageURL:       eventImageURL.String,
			StartDate:      eventStartDate.Time,
			EndDate:        eventEndDate.Time,
			Price:          eventPrice.Float64,
			TotalSeats:     int(eventTotalSeats.Int64),
			AvailableSeats: int(eventAvailable.Int64),
		}
	}

	return booking, nil
}

func (r *BookingRepository) queryBookings(query string, args ...any) ([]*models.Booking, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

// CreateTx inserts a booking inside the given transaction and fills in its
// generated id. A ticket-code collision surfaces as ErrDuplicateTicketCode.
func (r *BookingRepository) CreateTx(tx *sql.Tx, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (user_id, event_id, ticket_code, booking_date, status, amount_paid)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := tx.Exec(
		query,
		booking.UserID,
		booking.EventID,
		booking.TicketCode,
		booking.BookingDate,
		booking.Status,
		booking.AmountPaid,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: bookings.ticket_code") {
			return ErrDuplicateTicketCode
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new booking id: %w", err)
	}
	booking.ID = int(id)

	return nil
}

// GetByID retrieves a booking with its user and event by ID
func (r *BookingRepository) GetByID(id int) (*models.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(bookingSelect+" WHERE b.id = ?", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// GetByTicketCode retrieves a booking with its user and event by ticket code
func (r *BookingRepository) GetByTicketCode(code string) (*models.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(bookingSelect+" WHERE b.ticket_code = ?", code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// ListByUser returns a user's bookings, most recent first
func (r *BookingRepository) ListByUser(userID int) ([]*models.Booking, error) {
	return r.queryBookings(bookingSelect+" WHERE b.user_id = ? ORDER BY b.id DESC", userID)
}

// ListByEvent returns all bookings for an event in creation order
func (r *BookingRepository) ListByEvent(eventID int) ([]*models.Booking, error) {
	return r.queryBookings(bookingSelect+" WHERE b.event_id = ? ORDER BY b.id", eventID)
}

// ListRecent returns the most recently created bookings, id descending
func (r *BookingRepository) ListRecent(limit int) ([]*models.Booking, error) {
	return r.queryBookings(bookingSelect+" ORDER BY b.id DESC LIMIT ?", limit)
}

// UpdateStatus persists a booking's status
func (r *BookingRepository) UpdateStatus(id int, status models.BookingStatus) error {
	result, err := r.db.Exec("UPDATE bookings SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check status update result: %w", err)
	}
	if affected == 0 {
		return models.ErrBookingNotFound
	}

	return nil
}

// CountAll returns the total number of bookings
func (r *BookingRepository) CountAll() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM bookings").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of bookings with the given status
func (r *BookingRepository) CountByStatus(status models.BookingStatus) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM bookings WHERE status = ?", status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings by status: %w", err)
	}
	return count, nil
}

// SumRevenue sums the associated event price over all bookings; bookings
// whose event is missing contribute zero.
func (r *BookingRepository) SumRevenue() (float64, error) {
	query := `
		SELECT COALESCE(SUM(e.price), 0)
		FROM bookings b
		LEFT JOIN events e ON e.id = b.event_id`

	var total float64
	err := r.db.QueryRow(query).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}
