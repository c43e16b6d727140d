package services

import (
	"testing"
	"time"

	"eventify/internal/models"
	"eventify/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventService(t *testing.T) *EventService {
	t.Helper()

	db := setupTestDB(t)
	return NewEventService(repositories.NewEventRepository(db.DB))
}

func validCreateRequest() *models.EventCreateRequest {
	return &models.EventCreateRequest{
		Title:      "Concert",
		Location:   "Main Hall",
		Category:   "Music",
		StartDate:  time.Now().AddDate(0, 1, 0),
		EndDate:    time.Now().AddDate(0, 1, 0).Add(3 * time.Hour),
		Price:      49.99,
		TotalSeats: 120,
	}
}

func TestEventService_CreateEvent_SyncsSeats(t *testing.T) {
	svc := newEventService(t)

	event, err := svc.CreateEvent(validCreateRequest())
	require.NoError(t, err)

	assert.NotZero(t, event.ID)
	assert.Equal(t, 120, event.AvailableSeats, "new events start fully available")

	got, err := svc.GetEventByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, got.AvailableSeats)
}

func TestEventService_CreateEvent_ExplicitAvailableSeats(t *testing.T) {
	svc := newEventService(t)

	req := validCreateRequest()
	req.AvailableSeats = 40

	event, err := svc.CreateEvent(req)
	require.NoError(t, err)
	assert.Equal(t, 40, event.AvailableSeats, "an explicit count is kept as-is")
}

func TestEventService_CreateEvent_Invalid(t *testing.T) {
	svc := newEventService(t)

	req := validCreateRequest()
	req.Title = "  "

	_, err := svc.CreateEvent(req)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	req = validCreateRequest()
	req.Price = -1
	_, err = svc.CreateEvent(req)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestEventService_UpdateEvent(t *testing.T) {
	svc := newEventService(t)

	event, err := svc.CreateEvent(validCreateRequest())
	require.NoError(t, err)
	originalEnd := event.EndDate

	updated, err := svc.UpdateEvent(event.ID, &models.EventUpdateRequest{
		Title:      "Renamed Concert",
		Location:   "Side Hall",
		Category:   "Music",
		StartDate:  event.StartDate,
		Price:      59.99,
		TotalSeats: 150,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Concert", updated.Title)
	assert.Equal(t, 150, updated.TotalSeats)
	assert.Equal(t, 120, updated.AvailableSeats, "updates never touch remaining capacity")
	assert.WithinDuration(t, originalEnd, updated.EndDate, time.Second)
}

func TestEventService_UpdateEvent_Missing(t *testing.T) {
	svc := newEventService(t)

	_, err := svc.UpdateEvent(999, &models.EventUpdateRequest{Title: "Ghost", TotalSeats: 1})
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestEventService_DeleteEvent(t *testing.T) {
	svc := newEventService(t)

	event, err := svc.CreateEvent(validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(event.ID))
	assert.ErrorIs(t, svc.DeleteEvent(event.ID), models.ErrEventNotFound)

	_, err = svc.GetEventByID(event.ID)
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestEventService_ListEvents(t *testing.T) {
	svc := newEventService(t)

	first, err := svc.CreateEvent(validCreateRequest())
	require.NoError(t, err)

	req := validCreateRequest()
	req.Title = "Workshop"
	second, err := svc.CreateEvent(req)
	require.NoError(t, err)

	events, err := svc.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, first.ID, events[0].ID)
	assert.Equal(t, second.ID, events[1].ID)
}
