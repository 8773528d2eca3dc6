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

type ConversationHandler struct {
	convService service.ConversationService
}

func NewConversationHandler(convService service.ConversationService) *ConversationHandler {
	return &ConversationHandler{convService: convService}
}

func (h *ConversationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := h.convService.Create(ctx, req.CustomerID, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		case errors.Is(err, service.ErrAgentUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create external conversation"})
		default:
			slog.ErrorContext(ctx, "failed to create conversation", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create conversation"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToConversationResponse(conv))
}

func (h *ConversationHandler) ListByCustomer(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, ok := parseIDParam(c, "customerID")
	if !ok {
		return
	}

	convs, err := h.convService.ListByCustomer(ctx, customerID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list conversations", "error", err, "customer_id", customerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list conversations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToConversationResponses(convs))
}

func (h *ConversationHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	conversationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.convService.Delete(ctx, conversationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete conversation", "error", err, "conversation_id", conversationID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete conversation"})
		return
	}

	c.Status(http.StatusNoContent)
}
