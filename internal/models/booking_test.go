package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ticketCodePattern = regexp.MustCompile(`^EVT-[A-Z0-9]{8}$`)

func TestNewTicketCode_Format(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := NewTicketCode()
		assert.Regexp(t, ticketCodePattern, code)
	}
}

func TestNewTicketCode_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code := NewTicketCode()
		assert.False(t, seen[code], "generated duplicate ticket code %s", code)
		seen[code] = true
	}
}

func TestNewBooking(t *testing.T) {
	before := time.Now()
	booking := NewBooking(3, 7)

	assert.Equal(t, 3, booking.UserID)
	assert.Equal(t, 7, booking.EventID)
	assert.Equal(t, StatusConfirmed, booking.Status)
	assert.Regexp(t, ticketCodePattern, booking.TicketCode)
	assert.False(t, booking.BookingDate.Before(before))
	assert.False(t, booking.BookingDate.After(time.Now()))
}

func TestBooking_CheckIn(t *testing.T) {
	t.Run("confirmed booking checks in", func(t *testing.T) {
		booking := NewBooking(1, 1)

		err := booking.CheckIn()
		assert.NoError(t, err)
		assert.Equal(t, StatusCheckedIn, booking.Status)
		assert.True(t, booking.IsCheckedIn())
	})

	t.Run("second check-in is rejected", func(t *testing.T) {
		booking := NewBooking(1, 1)

		assert.NoError(t, booking.CheckIn())
		err := booking.CheckIn()
		assert.ErrorIs(t, err, ErrTicketAlreadyUsed)
		assert.Equal(t, StatusCheckedIn, booking.Status)
	})
}
