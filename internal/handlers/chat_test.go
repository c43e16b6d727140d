package handlers

import (
	"net/http"
	"testing"

	"eventify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHandler_Chat(t *testing.T) {
	f := newAppFixture(t)

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"ticket", "where is my ticket", "You can find your tickets in the Dashboard after logging in 🎟️"},
		{"event", "any events soon?", "We have many exciting events! Visit the Home page to explore 🎉"},
		{"payment", "how does payment work", "Payments are handled securely during checkout 💳"},
		{"fallback", "hi", "I'm your Eventify Assistant 🤖. How can I help you today?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodPost, "/api/chat", models.ChatRequest{Message: tt.message})
			require.Equal(t, http.StatusOK, w.Code)

			var resp models.ChatResponse
			decodeJSON(t, w, &resp)
			assert.Equal(t, tt.want, resp.Reply)
		})
	}
}

func TestChatHandler_Chat_Blank(t *testing.T) {
	f := newAppFixture(t)

	w := f.do(t, http.MethodPost, "/api/chat", models.ChatRequest{Message: "   "})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ChatResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Message cannot be empty", resp.Reply)
}
