package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobpromax.app/agent-api/internal/http/dto"
	"jobpromax.app/agent-api/internal/service"
	"jobpromax.app/agent-api/internal/store"
)

type MessageHandler struct {
	msgService service.MessageService
}

func NewMessageHandler(msgService service.MessageService) *MessageHandler {
	return &MessageHandler{msgService: msgService}
}

func (h *MessageHandler) ListByConversation(c *gin.Context) {
	ctx := c.Request.Context()

	conversationID, ok := parseIDParam(c, "conversationID")
	if !ok {
		return
	}

	messages, err := h.msgService.ListByConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to list messages", "error", err, "conversation_id", conversationID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}
