package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"eventify/internal/models"
	"eventify/internal/services"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking, check-in, guest-list, broadcast and
// stats requests
type BookingHandler struct {
	bookingService services.BookingServiceInterface
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService services.BookingServiceInterface) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Book godoc
// @Summary Book one seat on an event
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body models.BookingCreateRequest true "user and event ids"
// @Success 200 {object} models.Booking
// @Failure 404 {object} models.MessageResponse
// @Failure 409 {object} models.MessageResponse
// @Router /bookings/book [post]
func (h *BookingHandler) Book(c *gin.Context) {
	var req models.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid request body"})
		return
	}

	booking, err := h.bookingService.CreateBooking(req.UserID, req.EventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// Verify godoc
// @Summary Gate check-in by ticket code or booking id
// @Tags bookings
// @Produce json
// @Param ticketCodeOrId path string true "ticket code or numeric booking id"
// @Success 200 {object} models.VerificationResult
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /bookings/verify/{ticketCodeOrId} [post]
func (h *BookingHandler) Verify(c *gin.Context) {
	result, err := h.bookingService.VerifyTicket(c.Param("ticketCodeOrId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListByUser godoc
// @Summary List a user's bookings, most recent first
// @Tags bookings
// @Produce json
// @Param userId path int true "user id"
// @Success 200 {array} models.Booking
// @Router /bookings/user/{userId} [get]
func (h *BookingHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}

	c.JSON(http.StatusOK, bookings)
}

// GuestList godoc
// @Summary Guest list for an event
// @Tags bookings
// @Produce json
// @Param eventId path int true "event id"
// @Success 200 {array} models.GuestListEntry
// @Router /bookings/event/{eventId} [get]
func (h *BookingHandler) GuestList(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid event id"})
		return
	}

	entries, err := h.bookingService.GuestList(eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Broadcast godoc
// @Summary Message every distinct attendee of an event
// @Tags bookings
// @Accept json
// @Produce json
// @Param eventId path int true "event id"
// @Param request body models.BroadcastRequest true "subject and message"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Router /bookings/admin/broadcast/{eventId} [post]
func (h *BookingHandler) Broadcast(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid event id"})
		return
	}

	var req models.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid request body"})
		return
	}

	notified, err := h.bookingService.Broadcast(eventID, req.Subject, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Successfully notified %d guests.", notified),
	})
}

// Stats godoc
// @Summary Admin dashboard aggregates
// @Tags bookings
// @Produce json
// @Success 200 {object} models.AdminStats
// @Router /bookings/admin/stats [get]
func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.bookingService.AdminStats()
	if err != nil {
		respondError(c, err)
		return
	}
	if stats.RecentBookings == nil {
		stats.RecentBookings = []*models.Booking{}
	}

	c.JSON(http.StatusOK, stats)
}
