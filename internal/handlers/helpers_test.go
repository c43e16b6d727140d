package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"eventify/internal/database"
	"eventify/internal/models"
	"eventify/internal/repositories"
	"eventify/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordedMessage struct {
	To      string
	Subject string
}

// stubEmailService swallows deliveries so handler tests stay offline
type stubEmailService struct {
	mu       sync.Mutex
	messages []recordedMessage
}

func (s *stubEmailService) SendTicketConfirmation(to, name, eventTitle, ticketCode string) error {
	return nil
}

func (s *stubEmailService) SendSimpleMessage(to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, recordedMessage{To: to, Subject: subject})
	return nil
}

type appFixture struct {
	router   *gin.Engine
	db       *database.DB
	users    *repositories.UserRepository
	events   *repositories.EventRepository
	bookings *repositories.BookingRepository
	email    *stubEmailService
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()

	db, err := database.NewConnection(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())

	users := repositories.NewUserRepository(db.DB)
	events := repositories.NewEventRepository(db.DB)
	bookings := repositories.NewBookingRepository(db.DB)
	email := &stubEmailService{}

	router := SetupRouter(
		"http://localhost:3000",
		NewAuthHandler(services.NewAuthService(users)),
		NewEventHandler(services.NewEventService(events)),
		NewBookingHandler(services.NewBookingService(db, bookings, events, users, email)),
		NewChatHandler(services.NewChatService()),
	)

	return &appFixture{
		router:   router,
		db:       db,
		users:    users,
		events:   events,
		bookings: bookings,
		email:    email,
	}
}

func (f *appFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func (f *appFixture) createUser(t *testing.T, name, email string) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: email, Password: "secret", Role: models.RoleUser}
	require.NoError(t, f.users.Create(user))
	return user
}

func (f *appFixture) createEvent(t *testing.T, title string, price float64, seats int) *models.Event {
	t.Helper()

	event := models.NewEvent(&models.EventCreateRequest{
		Title:      title,
		Location:   "Test Hall",
		Price:      price,
		TotalSeats: seats,
	})
	require.NoError(t, f.events.Create(event))
	return event
}
