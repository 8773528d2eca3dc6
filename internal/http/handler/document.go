package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobpromax.app/agent-api/internal/http/dto"
	"jobpromax.app/agent-api/internal/service"
	"jobpromax.app/agent-api/internal/store"
)

type DocumentHandler struct {
	docService service.DocumentService
}

func NewDocumentHandler(docService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

// Upload accepts a multipart form with customer_id, title, an optional type
// tag, and exactly one file field.
func (h *DocumentHandler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, err := strconv.ParseInt(c.PostForm("customer_id"), 10, 64)
	if err != nil || customerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer_id"})
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	var docType *string
	if t := strings.TrimSpace(c.PostForm("type")); t != "" {
		docType = &t
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	attachment, err := readAttachment(header)
	if err != nil {
		slog.WarnContext(ctx, "failed to read uploaded file", "error", err, "filename", header.Filename)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	doc, err := h.docService.Upload(ctx, customerID, title, attachment, docType)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to upload document", "error", err, "customer_id", customerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload document"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

func (h *DocumentHandler) ListByCustomer(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, ok := parseIDParam(c, "customerID")
	if !ok {
		return
	}

	docs, err := h.docService.ListByCustomer(ctx, customerID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list documents", "error", err, "customer_id", customerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list documents"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponses(docs))
}
