package handler

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobpromax.app/agent-api/internal/http/dto"
	"jobpromax.app/agent-api/internal/service"
	"jobpromax.app/agent-api/internal/store"
)

// maxAttachmentBytes caps how much of each uploaded file is read into memory.
const maxAttachmentBytes = 20 << 20 // 20 MiB

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Send relays one admin message to the conversation's remote thread. The body
// is either JSON {"message": ...} or a multipart form with a message field
// and zero or more files fields.
func (h *ChatHandler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	conversationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	message, files, err := h.readTurn(c)
	if err != nil {
		slog.WarnContext(ctx, "invalid chat request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.chatService.SendMessage(ctx, conversationID, message, files)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		case errors.Is(err, service.ErrAgentUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send message to agent"})
		default:
			slog.ErrorContext(ctx, "chat turn failed", "error", err, "conversation_id", conversationID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChatMessageResponse(result))
}

func (h *ChatHandler) readTurn(c *gin.Context) (string, []service.Attachment, error) {
	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req dto.ChatMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", nil, err
		}
		return req.Message, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return "", nil, err
	}

	message := strings.TrimSpace(c.PostForm("message"))
	if message == "" {
		return "", nil, errors.New("message is required")
	}

	var files []service.Attachment
	for _, header := range form.File["files"] {
		attachment, err := readAttachment(header)
		if err != nil {
			return "", nil, err
		}
		files = append(files, attachment)
	}
	return message, files, nil
}

func readAttachment(header *multipart.FileHeader) (service.Attachment, error) {
	file, err := header.Open()
	if err != nil {
		return service.Attachment{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAttachmentBytes))
	if err != nil {
		return service.Attachment{}, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return service.Attachment{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
