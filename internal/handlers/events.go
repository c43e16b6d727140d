package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"eventify/internal/models"
	"eventify/internal/services"

	"github.com/gin-gonic/gin"
)

// EventHandler handles event CRUD requests
type EventHandler struct {
	eventService services.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService services.EventServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func eventIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid event id"})
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.ListEvents()
	if err != nil {
		respondError(c, err)
		return
	}
	if events == nil {
		events = []*models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// Get godoc
// @Summary Get a single event
// @Tags events
// @Produce json
// @Param id path int true "event id"
// @Success 200 {object} models.Event
// @Failure 404 {object} models.MessageResponse
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetEventByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body models.EventCreateRequest true "event data"
// @Success 200 {object} models.Event
// @Failure 400 {object} models.MessageResponse
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req models.EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid request body"})
		return
	}

	event, err := h.eventService.CreateEvent(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "event id"
// @Param request body models.EventUpdateRequest true "event data"
// @Success 200 {object} models.Event
// @Failure 404 {object} models.MessageResponse
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	var req models.EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid request body"})
		return
	}

	event, err := h.eventService.UpdateEvent(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path int true "event id"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Event deleted successfully with id: %d", id),
	})
}
