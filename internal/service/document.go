package service

import (
	"context"
	"fmt"
	"log/slog"

	"jobpromax.app/agent-api/common/id"
	"jobpromax.app/agent-api/common/logger"
	"jobpromax.app/agent-api/internal/agent"
	"jobpromax.app/agent-api/internal/model"
	"jobpromax.app/agent-api/internal/store"
)

type DocumentService interface {
	// Upload forwards the file to the agent's storage and records it
	// locally. A failed remote upload is non-fatal; the record then points
	// at a local path placeholder instead of remote storage.
	Upload(ctx context.Context, customerID int64, title string, file Attachment, docType *string) (*model.Document, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Document, error)
}

type documentService struct {
	docStore      store.DocumentStore
	customerStore store.CustomerStore
	agent         agent.Client
}

func NewDocumentService(docStore store.DocumentStore, customerStore store.CustomerStore, agentClient agent.Client) DocumentService {
	return &documentService{
		docStore:      docStore,
		customerStore: customerStore,
		agent:         agentClient,
	}
}

func (s *documentService) Upload(ctx context.Context, customerID int64, title string, file Attachment, docType *string) (*model.Document, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CustomerID: logger.Ptr(customerID),
		Component:  "service.document",
	})

	if _, err := s.customerStore.GetByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("loading customer: %w", err)
	}

	filename := file.Filename
	if filename == "" {
		filename = "uploaded_file"
	}

	url := "/files/" + filename
	fileID, err := s.agent.UploadDocument(ctx, file.Data, filename, file.ContentType)
	if err != nil {
		slog.WarnContext(ctx, "remote document upload failed, storing local placeholder",
			"filename", filename,
			"error", err,
		)
	} else {
		url = "openai-file://" + fileID
	}

	doc := &model.Document{
		ID:         id.New(),
		CustomerID: customerID,
		Title:      title,
		URL:        url,
		Type:       docType,
	}

	if err := s.docStore.Create(ctx, doc); err != nil {
		slog.ErrorContext(ctx, "failed to create document record",
			"error", err,
			"filename", filename,
		)
		return nil, fmt.Errorf("creating document: %w", err)
	}

	slog.InfoContext(ctx, "document uploaded",
		"document_id", doc.ID,
		"url", doc.URL,
	)
	return doc, nil
}

func (s *documentService) ListByCustomer(ctx context.Context, customerID int64) ([]model.Document, error) {
	docs, err := s.docStore.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return docs, nil
}
