package service

import (
	"context"
	"fmt"

	"jobpromax.app/agent-api/internal/model"
	"jobpromax.app/agent-api/internal/store"
)

type MessageService interface {
	ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error)
}

type messageService struct {
	msgStore  store.MessageStore
	convStore store.ConversationStore
}

func NewMessageService(msgStore store.MessageStore, convStore store.ConversationStore) MessageService {
	return &messageService{
		msgStore:  msgStore,
		convStore: convStore,
	}
}

func (s *messageService) ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	if _, err := s.convStore.GetByID(ctx, conversationID); err != nil {
		return nil, err
	}
	messages, err := s.msgStore.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return messages, nil
}
