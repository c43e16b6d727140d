package services

import (
	"strings"

	"eventify/internal/models"
)

// Canned assistant replies, matched by keyword containment in order
const (
	chatReplyTicket  = "You can find your tickets in the Dashboard after logging in 🎟️"
	chatReplyEvent   = "We have many exciting events! Visit the Home page to explore 🎉"
	chatReplyPayment = "Payments are handled securely during checkout 💳"
	chatReplyDefault = "I'm your Eventify Assistant 🤖. How can I help you today?"
)

// ChatService answers visitor questions with canned replies
type ChatService struct{}

// NewChatService creates a new chat service
func NewChatService() *ChatService {
	return &ChatService{}
}

// Reply selects the canned response for a message. Blank messages fail with
// ErrInvalidInput.
func (s *ChatService) Reply(message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", models.ErrInvalidInput
	}

	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "ticket"):
		return chatReplyTicket, nil
	case strings.Contains(lower, "event"):
		return chatReplyEvent, nil
	case strings.Contains(lower, "payment"):
		return chatReplyPayment, nil
	default:
		return chatReplyDefault, nil
	}
}
