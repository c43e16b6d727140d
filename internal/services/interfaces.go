package services

import "eventify/internal/models"

// AuthServiceInterface defines the interface for authentication services
type AuthServiceInterface interface {
	Signup(req *models.SignupRequest) (*models.User, error)
	Login(req *models.LoginRequest) (*models.User, error)
}

// EventServiceInterface defines the interface for event services
type EventServiceInterface interface {
	ListEvents() ([]*models.Event, error)
	GetEventByID(id int) (*models.Event, error)
	CreateEvent(req *models.EventCreateRequest) (*models.Event, error)
	UpdateEvent(id int, req *models.EventUpdateRequest) (*models.Event, error)
	DeleteEvent(id int) error
}

// BookingServiceInterface defines the interface for the booking engine
type BookingServiceInterface interface {
	CreateBooking(userID, eventID int) (*models.Booking, error)
	VerifyTicket(ticketCodeOrID string) (*models.VerificationResult, error)
	ListByUser(userID int) ([]*models.Booking, error)
	GuestList(eventID int) ([]*models.GuestListEntry, error)
	Broadcast(eventID int, subject, message string) (int, error)
	AdminStats() (*models.AdminStats, error)
}

// ChatServiceInterface defines the interface for the assistant endpoint
type ChatServiceInterface interface {
	Reply(message string) (string, error)
}

// EmailService defines the mail-sending collaborator. Delivery is
// best-effort: callers log failures and never propagate them.
type EmailService interface {
	SendTicketConfirmation(to, name, eventTitle, ticketCode string) error
	SendSimpleMessage(to, subject, body string) error
}
