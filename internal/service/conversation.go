package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"jobpromax.app/agent-api/common/id"
	"jobpromax.app/agent-api/common/logger"
	"jobpromax.app/agent-api/internal/agent"
	"jobpromax.app/agent-api/internal/model"
	"jobpromax.app/agent-api/internal/store"
)

// ErrAgentUnavailable wraps remote failures that should surface as a gateway
// error to the caller.
var ErrAgentUnavailable = errors.New("agent backend unavailable")

type ConversationService interface {
	// Create allocates a remote thread and binds it to a new local record.
	Create(ctx context.Context, customerID int64, title string) (*model.Conversation, error)
	GetByID(ctx context.Context, conversationID int64) (*model.Conversation, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Conversation, error)
	Delete(ctx context.Context, conversationID int64) error
}

type conversationService struct {
	convStore     store.ConversationStore
	customerStore store.CustomerStore
	agent         agent.Client
	development   bool
}

func NewConversationService(convStore store.ConversationStore, customerStore store.CustomerStore, agentClient agent.Client, development bool) ConversationService {
	return &conversationService{
		convStore:     convStore,
		customerStore: customerStore,
		agent:         agentClient,
		development:   development,
	}
}

func (s *conversationService) Create(ctx context.Context, customerID int64, title string) (*model.Conversation, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CustomerID: logger.Ptr(customerID),
		Component:  "service.conversation",
	})

	if _, err := s.customerStore.GetByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("loading customer: %w", err)
	}

	threadID, err := s.agent.CreateThread(ctx)
	if err != nil {
		// Development keeps working without reachable agent credentials; a
		// conversation bound to a mock thread only ever talks to the mock
		// backend.
		if !s.development {
			slog.ErrorContext(ctx, "failed to create remote thread", "error", err)
			return nil, fmt.Errorf("creating remote thread: %w: %w", ErrAgentUnavailable, err)
		}
		threadID = agent.NewMockThreadID()
		slog.WarnContext(ctx, "remote thread creation failed, using mock thread",
			"error", err,
			"thread_id", threadID,
		)
	}

	// external_thread_id is unique; catch a double binding here instead of
	// surfacing the constraint violation from the insert.
	if existing, err := s.convStore.GetByThreadID(ctx, threadID); err == nil {
		slog.ErrorContext(ctx, "remote thread already bound to a conversation",
			"thread_id", threadID,
			"conversation_id", existing.ID,
		)
		return nil, fmt.Errorf("thread %s already bound to conversation %d", threadID, existing.ID)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking thread binding: %w", err)
	}

	conv := &model.Conversation{
		ID:               id.New(),
		CustomerID:       customerID,
		Title:            title,
		ExternalThreadID: threadID,
	}

	if err := s.convStore.Create(ctx, conv); err != nil {
		slog.ErrorContext(ctx, "failed to create conversation",
			"error", err,
			"thread_id", threadID,
		)
		return nil, fmt.Errorf("creating conversation: %w", err)
	}

	slog.InfoContext(ctx, "conversation created",
		"conversation_id", conv.ID,
		"thread_id", threadID,
	)
	return conv, nil
}

func (s *conversationService) GetByID(ctx context.Context, conversationID int64) (*model.Conversation, error) {
	return s.convStore.GetByID(ctx, conversationID)
}

func (s *conversationService) ListByCustomer(ctx context.Context, customerID int64) ([]model.Conversation, error) {
	convs, err := s.convStore.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	return convs, nil
}

func (s *conversationService) Delete(ctx context.Context, conversationID int64) error {
	if _, err := s.convStore.GetByID(ctx, conversationID); err != nil {
		return err
	}
	// The remote thread is left alone; its lifetime belongs to the agent
	// service. Local messages go with the conversation via cascade.
	if err := s.convStore.Delete(ctx, conversationID); err != nil {
		return fmt.Errorf("deleting conversation: %w", err)
	}
	slog.InfoContext(ctx, "conversation deleted", "conversation_id", conversationID)
	return nil
}
