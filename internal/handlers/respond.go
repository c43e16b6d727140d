package handlers

import (
	"errors"
	"log"
	"net/http"

	"eventify/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError translates engine errors into the client-facing status and
// message. Unexpected failures are logged and surfaced as a generic
// internal error without leaking internals.
func respondError(c *gin.Context, err error) {
	status, message := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, models.MessageResponse{Message: message})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, models.ErrEventNotFound):
		return http.StatusNotFound, "Event not found"
	case errors.Is(err, models.ErrBookingNotFound):
		return http.StatusNotFound, "❌ Ticket not found."
	case errors.Is(err, models.ErrSoldOut):
		return http.StatusConflict, "This event is sold out!"
	case errors.Is(err, models.ErrTicketAlreadyUsed):
		return http.StatusBadRequest, "⚠️ Warning: Ticket already scanned!"
	case errors.Is(err, models.ErrEmailTaken):
		return http.StatusBadRequest, "Error: Email is already in use!"
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, models.ErrNoRecipients):
		return http.StatusBadRequest, "No guests to notify."
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
