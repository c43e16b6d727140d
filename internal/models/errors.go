package models

import "errors"

// Common errors used throughout the application
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrBookingNotFound    = errors.New("ticket not found")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrSoldOut            = errors.New("event is sold out")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTicketAlreadyUsed  = errors.New("ticket already scanned")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoRecipients       = errors.New("no guests to notify")
)
