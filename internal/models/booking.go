package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCheckedIn BookingStatus = "CHECKED_IN"
	// StatusCancelled exists in the status domain but no current flow
	// produces it.
	StatusCancelled BookingStatus = "CANCELLED"
)

// TicketCodePrefix is the prefix carried by every generated ticket code.
// Because it is non-numeric, a generated code can never collide with the
// numeric-id fallback used during verification.
const TicketCodePrefix = "EVT-"

// Booking represents a confirmed seat on an event. It holds non-owning
// references to the user and event; many bookings may point at either.
type Booking struct {
	ID          int           `json:"id" db:"id"`
	UserID      int           `json:"userId" db:"user_id"`
	EventID     int           `json:"eventId" db:"event_id"`
	TicketCode  string        `json:"ticketCode" db:"ticket_code"`
	BookingDate time.Time     `json:"bookingDate" db:"booking_date"`
	Status      BookingStatus `json:"status" db:"status"`
	AmountPaid  float64       `json:"amountPaid" db:"amount_paid"`

	User  *User  `json:"user,omitempty"`
	Event *Event `json:"event,omitempty"`
}

// NewBooking creates a CONFIRMED booking with a fresh ticket code and the
// booking date set to the current server time.
func NewBooking(userID, eventID int) *Booking {
	return &Booking{
		UserID:      userID,
		EventID:     eventID,
		TicketCode:  NewTicketCode(),
		BookingDate: time.Now(),
		Status:      StatusConfirmed,
	}
}

// NewTicketCode generates a human-presentable ticket code of the form
// EVT-XXXXXXXX, eight uppercase characters taken from a random uuid.
func NewTicketCode() string {
	return TicketCodePrefix + strings.ToUpper(uuid.NewString()[:8])
}

// IsCheckedIn returns true if the ticket has already been scanned
func (b *Booking) IsCheckedIn() bool {
	return b.Status == StatusCheckedIn
}

// CheckIn transitions the booking to CHECKED_IN. The transition is one-way:
// re-checking an already scanned ticket fails with ErrTicketAlreadyUsed.
func (b *Booking) CheckIn() error {
	if b.IsCheckedIn() {
		return ErrTicketAlreadyUsed
	}
	b.Status = StatusCheckedIn
	return nil
}

// GuestListEntry is one row of the per-event guest list shown to admins
type GuestListEntry struct {
	ID            int           `json:"id"`
	TicketCode    string        `json:"ticketCode"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	CheckedIn     bool          `json:"checkedIn"`
	Status        BookingStatus `json:"status"`
}

// VerificationResult is returned by a successful gate check-in
type VerificationResult struct {
	Message  string `json:"message"`
	Event    string `json:"event"`
	Customer string `json:"customer"`
}

// AdminStats is the aggregate dashboard summary, recomputed on every call
type AdminStats struct {
	TotalBookings  int        `json:"totalBookings"`
	TotalRevenue   float64    `json:"totalRevenue"`
	CheckedIn      int        `json:"checkedIn"`
	RecentBookings []*Booking `json:"recentBookings"`
}
