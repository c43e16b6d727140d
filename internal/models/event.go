package models

import (
	"errors"
	"strings"
	"time"
)

// Event represents a bookable event. TotalSeats is the capacity entered by
// the admin; AvailableSeats is the remaining bookable capacity and is the
// only counter the booking path touches.
type Event struct {
	ID             int       `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	Location       string    `json:"location" db:"location"`
	Category       string    `json:"category" db:"category"`
	ImageURL       string    `json:"imageUrl" db:"image_url"`
	StartDate      time.Time `json:"startDate" db:"start_date"`
	EndDate        time.Time `json:"endDate" db:"end_date"`
	Price          float64   `json:"price" db:"price"`
	TotalSeats     int       `json:"totalSeats" db:"total_seats"`
	AvailableSeats int       `json:"availableSeats" db:"available_seats"`
}

// EventCreateRequest represents the data needed to create a new event
type EventCreateRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Category       string    `json:"category"`
	ImageURL       string    `json:"imageUrl"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Price          float64   `json:"price"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
}

// EventUpdateRequest represents the fixed field set an update replaces.
// AvailableSeats and EndDate are intentionally absent: remaining capacity is
// owned by the booking path and the edit form never sends an end date.
type EventUpdateRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	StartDate   time.Time `json:"startDate"`
	Price       float64   `json:"price"`
	TotalSeats  int       `json:"totalSeats"`
}

// Validate validates event creation data
func (req *EventCreateRequest) Validate() error {
	return validateEventFields(req.Title, req.TotalSeats, req.Price)
}

// Validate validates event update data
func (req *EventUpdateRequest) Validate() error {
	return validateEventFields(req.Title, req.TotalSeats, req.Price)
}

func validateEventFields(title string, totalSeats int, price float64) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title is required")
	}
	if totalSeats < 0 {
		return errors.New("total seats cannot be negative")
	}
	if price < 0 {
		return errors.New("price cannot be negative")
	}
	return nil
}

// NewEvent builds an Event from a create request, syncing the seat counters:
// when availableSeats is unset or zero while totalSeats is positive, the
// event starts with every seat available. After this point the two counters
// diverge independently.
func NewEvent(req *EventCreateRequest) *Event {
	event := &Event{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Price:          req.Price,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.AvailableSeats,
	}

	if event.AvailableSeats == 0 && event.TotalSeats > 0 {
		event.AvailableSeats = event.TotalSeats
	}

	return event
}

// ApplyUpdate replaces the updatable field set on the event
func (e *Event) ApplyUpdate(req *EventUpdateRequest) {
	e.Title = req.Title
	e.Description = req.Description
	e.Location = req.Location
	e.Category = req.Category
	e.ImageURL = req.ImageURL
	e.StartDate = req.StartDate
	e.Price = req.Price
	e.TotalSeats = req.TotalSeats
}

// IsSoldOut returns true when no seats remain
func (e *Event) IsSoldOut() bool {
	return e.AvailableSeats <= 0
}
