package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"eventify/internal/database"
	"eventify/internal/models"

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

func createTestUser(t *testing.T, repo *UserRepository, name, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: "secret",
		Role:     models.RoleUser,
	}
	require.NoError(t, repo.Create(user))

	return user
}

func createTestEvent(t *testing.T, repo *EventRepository, title string, price float64, seats int) *models.Event {
	t.Helper()

	event := models.NewEvent(&models.EventCreateRequest{
		Title:      title,
		Location:   "Test Hall",
		Category:   "Test",
		StartDate:  time.Now().AddDate(0, 0, 7),
		EndDate:    time.Now().AddDate(0, 0, 7).Add(2 * time.Hour),
		Price:      price,
		TotalSeats: seats,
	})
	require.NoError(t, repo.Create(event))

	return event
}

func createTestBooking(t *testing.T, db *database.DB, repo *BookingRepository, userID, eventID int) *models.Booking {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err)

	booking := models.NewBooking(userID, eventID)
	require.NoError(t, repo.CreateTx(tx, booking))
	require.NoError(t, tx.Commit())

	return booking
}
