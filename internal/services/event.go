package services

import (
	"fmt"

	"eventify/internal/models"
	"eventify/internal/repositories"
)

// EventService handles event CRUD
type EventService struct {
	events *repositories.EventRepository
}

// NewEventService creates a new event service
func NewEventService(events *repositories.EventRepository) *EventService {
	return &EventService{events: events}
}

// ListEvents returns all events
func (s *EventService) ListEvents() ([]*models.Event, error) {
	return s.events.List()
}

// GetEventByID returns a single event
func (s *EventService) GetEventByID(id int) (*models.Event, error) {
	return s.events.GetByID(id)
}

// CreateEvent persists a new event. Seat syncing happens here, at creation
// time, not in the persistence layer: an event created with totalSeats set
// and availableSeats unset starts fully available.
func (s *EventService) CreateEvent(req *models.EventCreateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	event := models.NewEvent(req)
	if err := s.events.Create(event); err != nil {
		return nil, err
	}

	return event, nil
}

// UpdateEvent replaces the fixed updatable field set on an existing event.
// availableSeats is left untouched so in-flight bookings keep their counter.
func (s *EventService) UpdateEvent(id int, req *models.EventUpdateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	event, err := s.events.GetByID(id)
	if err != nil {
		return nil, err
	}

	event.ApplyUpdate(req)
	if err := s.events.Update(event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent removes an event; fails with ErrEventNotFound when absent
func (s *EventService) DeleteEvent(id int) error {
	return s.events.Delete(id)
}
