package handlers

import (
	"errors"
	"net/http"

	"eventify/internal/models"
	"eventify/internal/services"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles the assistant endpoint
type ChatHandler struct {
	chatService services.ChatServiceInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService services.ChatServiceInterface) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat godoc
// @Summary Canned assistant reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "visitor message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ChatResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ChatResponse{Reply: "Message cannot be empty"})
		return
	}

	reply, err := h.chatService.Reply(req.Message)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, models.ChatResponse{Reply: "Message cannot be empty"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}
