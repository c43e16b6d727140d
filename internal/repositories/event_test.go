package repositories

import (
	"testing"

	"eventify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db.DB)

	event := createTestEvent(t, repo, "Concert", 49.99, 120)
	assert.NotZero(t, event.ID)

	got, err := repo.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Concert", got.Title)
	assert.Equal(t, 49.99, got.Price)
	assert.Equal(t, 120, got.TotalSeats)
	assert.Equal(t, 120, got.AvailableSeats)
}

func TestEventRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db.DB)

	createTestEvent(t, repo, "First", 10, 50)
	createTestEvent(t, repo, "Second", 20, 60)

	events, err := repo.List()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "First", events[0].Title)
	assert.Equal(t, "Second", events[1].Title)
}

func TestEventRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db.DB)

	event := createTestEvent(t, repo, "Original", 10, 50)
	event.Title = "Renamed"
	event.Price = 30

	require.NoError(t, repo.Update(event))

	got, err := repo.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, 30.0, got.Price)
}

func TestEventRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db.DB)

	event := createTestEvent(t, repo, "Doomed", 10, 50)
	require.NoError(t, repo.Delete(event.ID))

	_, err := repo.GetByID(event.ID)
	assert.ErrorIs(t, err, models.ErrEventNotFound)

	assert.ErrorIs(t, repo.Delete(event.ID), models.ErrEventNotFound)
}

func TestEventRepository_UpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db.DB)

	err := repo.Update(&models.Event{ID: 999, Title: "Ghost"})
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestEventRepository_DecrementSeats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db.DB)

	event := createTestEvent(t, repo, "Small Venue", 10, 1)

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, repo.DecrementSeats(tx, event.ID))
	require.NoError(t, tx.Commit())

	got, err := repo.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AvailableSeats)
	assert.Equal(t, 1, got.TotalSeats, "total seats must stay stable")

	tx, err = db.Begin()
	require.NoError(t, err)
	assert.ErrorIs(t, repo.DecrementSeats(tx, event.ID), models.ErrSoldOut)
	require.NoError(t, tx.Rollback())
}
