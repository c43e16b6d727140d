package services

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"eventify/internal/database"
	"eventify/internal/models"
	"eventify/internal/repositories"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.NewConnection(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())

	return db
}

type sentConfirmation struct {
	To         string
	Name       string
	EventTitle string
	TicketCode string
}

type sentMessage struct {
	To      string
	Subject string
	Body    string
}

// stubEmailService records deliveries and can be told to fail. Safe for
// concurrent use.
type stubEmailService struct {
	mu            sync.Mutex
	confirmations []sentConfirmation
	messages      []sentMessage
	err           error
}

func (s *stubEmailService) SendTicketConfirmation(to, name, eventTitle, ticketCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.confirmations = append(s.confirmations, sentConfirmation{to, name, eventTitle, ticketCode})
	return nil
}

func (s *stubEmailService) SendSimpleMessage(to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, sentMessage{to, subject, body})
	return nil
}

type bookingFixture struct {
	db       *database.DB
	users    *repositories.UserRepository
	events   *repositories.EventRepository
	bookings *repositories.BookingRepository
	email    *stubEmailService
	service  *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	db := setupTestDB(t)
	users := repositories.NewUserRepository(db.DB)
	events := repositories.NewEventRepository(db.DB)
	bookings := repositories.NewBookingRepository(db.DB)
	email := &stubEmailService{}

	return &bookingFixture{
		db:       db,
		users:    users,
		events:   events,
		bookings: bookings,
		email:    email,
		service:  NewBookingService(db, bookings, events, users, email),
	}
}

func (f *bookingFixture) createUser(t *testing.T, name, email string) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: email, Password: "secret", Role: models.RoleUser}
	require.NoError(t, f.users.Create(user))
	return user
}

func (f *bookingFixture) createEvent(t *testing.T, title string, price float64, seats int) *models.Event {
	t.Helper()

	event := models.NewEvent(&models.EventCreateRequest{
		Title:      title,
		Location:   "Test Hall",
		StartDate:  time.Now().AddDate(0, 0, 7),
		EndDate:    time.Now().AddDate(0, 0, 7).Add(2 * time.Hour),
		Price:      price,
		TotalSeats: seats,
	})
	require.NoError(t, f.events.Create(event))
	return event
}
