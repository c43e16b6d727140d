package models

// SignupRequest represents a registration submission
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login submission
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BookingCreateRequest identifies the user and event to book
type BookingCreateRequest struct {
	UserID  int `json:"userId"`
	EventID int `json:"eventId"`
}

// BroadcastRequest carries an admin message for all attendees of an event
type BroadcastRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ChatRequest carries a visitor message for the assistant endpoint
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant's canned reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// MessageResponse is the generic success/error envelope used by endpoints
// that only report an outcome message
type MessageResponse struct {
	Message string `json:"message"`
}
