package services

import (
	"fmt"
	"log"
	"strconv"

	"eventify/internal/database"
	"eventify/internal/models"
	"eventify/internal/repositories"
)

// ticketCodeAttempts bounds regeneration when a generated ticket code
// collides with an existing one.
const ticketCodeAttempts = 5

// recentBookingsLimit is the size of the dashboard's recent-bookings list
const recentBookingsLimit = 5

// BookingService is the booking engine: seat-limited booking, ticket
// issuance, gate check-in, guest lists, broadcast recipients and admin
// statistics.
type BookingService struct {
	db       *database.DB
	bookings *repositories.BookingRepository
	events   *repositories.EventRepository
	users    *repositories.UserRepository
	email    EmailService
}

// NewBookingService creates a new booking service
func NewBookingService(
	db *database.DB,
	bookings *repositories.BookingRepository,
	events *repositories.EventRepository,
	users *repositories.UserRepository,
	email EmailService,
) *BookingService {
	return &BookingService{
		db:       db,
		bookings: bookings,
		events:   events,
		users:    users,
		email:    email,
	}
}

// CreateBooking books one seat on an event for a user. The seat check and
// decrement are a single guarded statement inside the transaction, so two
// concurrent bookings can never share the last seat. The confirmation email
// is sent after commit and is best-effort only.
func (s *BookingService) CreateBooking(userID, eventID int) (*models.Booking, error) {
	event, err := s.events.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start booking transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.events.DecrementSeats(tx, event.ID); err != nil {
		return nil, err
	}

	booking := models.NewBooking(user.ID, event.ID)
	for attempt := 0; ; attempt++ {
		err = s.bookings.CreateTx(tx, booking)
		if err == nil {
			break
		}
		if err == repositories.ErrDuplicateTicketCode && attempt < ticketCodeAttempts {
			booking.TicketCode = models.NewTicketCode()
			continue
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	if err := s.email.SendTicketConfirmation(user.Email, user.Name, event.Title, booking.TicketCode); err != nil {
		log.Printf("Confirmation email failed for %s: %v", user.Email, err)
	}

	// Reload so the response carries the user and the post-decrement event
	saved, err := s.bookings.GetByID(booking.ID)
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// VerifyTicket performs a gate check-in. Lookup is by ticket code first,
// falling back to booking id when the input is numeric. A ticket that was
// already scanned is rejected with ErrTicketAlreadyUsed rather than being
// silently re-verified.
func (s *BookingService) VerifyTicket(ticketCodeOrID string) (*models.VerificationResult, error) {
	booking, err := s.bookings.GetByTicketCode(ticketCodeOrID)
	if err == models.ErrBookingNotFound {
		if id, convErr := strconv.Atoi(ticketCodeOrID); convErr == nil {
			booking, err = s.bookings.GetByID(id)
		}
	}
	if err != nil {
		return nil, err
	}

	if err := booking.CheckIn(); err != nil {
		return nil, err
	}

	if err := s.bookings.UpdateStatus(booking.ID, booking.Status); err != nil {
		return nil, err
	}

	customer := "Unknown"
	if booking.User != nil {
		customer = booking.User.Name
	}
	eventTitle := ""
	if booking.Event != nil {
		eventTitle = booking.Event.Title
	}

	return &models.VerificationResult{
		Message:  fmt.Sprintf("✅ Verified! Welcome, %s", customer),
		Event:    eventTitle,
		Customer: customer,
	}, nil
}

// ListByUser returns a user's bookings, most recent first
func (s *BookingService) ListByUser(userID int) ([]*models.Booking, error) {
	return s.bookings.ListByUser(userID)
}

// GuestList returns the per-event attendee rows shown to admins
func (s *BookingService) GuestList(eventID int) ([]*models.GuestListEntry, error) {
	bookings, err := s.bookings.ListByEvent(eventID)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.GuestListEntry, 0, len(bookings))
	for _, b := range bookings {
		entry := &models.GuestListEntry{
			ID:            b.ID,
			TicketCode:    b.TicketCode,
			CustomerName:  "Unknown",
			CustomerEmail: "N/A",
			CheckedIn:     b.IsCheckedIn(),
			Status:        b.Status,
		}
		if b.User != nil {
			entry.CustomerName = b.User.Name
			entry.CustomerEmail = b.User.Email
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Broadcast sends a message to every distinct attendee email for an event.
// Each recipient is attempted independently; failures are logged and do not
// abort delivery to the rest. Returns the number of distinct recipients or
// ErrNoRecipients when the event has no attendees.
func (s *BookingService) Broadcast(eventID int, subject, message string) (int, error) {
	bookings, err := s.bookings.ListByEvent(eventID)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool)
	var emails []string
	for _, b := range bookings {
		if b.User == nil || b.User.Email == "" || seen[b.User.Email] {
			continue
		}
		seen[b.User.Email] = true
		emails = append(emails, b.User.Email)
	}

	if len(emails) == 0 {
		return 0, models.ErrNoRecipients
	}

	for _, email := range emails {
		if err := s.email.SendSimpleMessage(email, subject, message); err != nil {
			log.Printf("Broadcast failed for: %s: %v", email, err)
		}
	}

	return len(emails), nil
}

// AdminStats recomputes the dashboard aggregates from current state
func (s *BookingService) AdminStats() (*models.AdminStats, error) {
	total, err := s.bookings.CountAll()
	if err != nil {
		return nil, err
	}

	revenue, err := s.bookings.SumRevenue()
	if err != nil {
		return nil, err
	}

	checkedIn, err := s.bookings.CountByStatus(models.StatusCheckedIn)
	if err != nil {
		return nil, err
	}

	recent, err := s.bookings.ListRecent(recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	return &models.AdminStats{
		TotalBookings:  total,
		TotalRevenue:   revenue,
		CheckedIn:      checkedIn,
		RecentBookings: recent,
	}, nil
}
