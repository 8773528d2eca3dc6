package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"jobpromax.app/agent-api/common/id"
	"jobpromax.app/agent-api/common/logger"
	"jobpromax.app/agent-api/internal/agent"
	"jobpromax.app/agent-api/internal/model"
	"jobpromax.app/agent-api/internal/store"
)

// Attachment is an inbound file to forward with a chat message. Bytes are
// held in memory only for the duration of the turn.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ChatResult is one completed chat turn.
type ChatResult struct {
	Reply            string         `json:"reply"`
	Raw              map[string]any `json:"raw,omitempty"`
	ExternalThreadID string         `json:"external_thread_id"`
	AdminMessage     *model.Message `json:"admin_message"`
	AgentMessage     *model.Message `json:"agent_message"`
}

type ChatService interface {
	// SendMessage relays one admin message to the conversation's remote
	// thread and persists both sides of the turn. On remote failure nothing
	// is persisted.
	SendMessage(ctx context.Context, conversationID int64, text string, files []Attachment) (*ChatResult, error)
}

type chatService struct {
	convStore store.ConversationStore
	txRunner  TxRunner
	agent     agent.Client
}

func NewChatService(convStore store.ConversationStore, txRunner TxRunner, agentClient agent.Client) ChatService {
	return &chatService{
		convStore: convStore,
		txRunner:  txRunner,
		agent:     agentClient,
	}
}

func (s *chatService) SendMessage(ctx context.Context, conversationID int64, text string, files []Attachment) (*ChatResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ConversationID: logger.Ptr(conversationID),
		Component:      "service.chat",
	})

	conv, err := s.convStore.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CustomerID: logger.Ptr(conv.CustomerID),
		ThreadID:   logger.Ptr(conv.ExternalThreadID),
	})

	fileIDs, attachedNames := s.uploadAttachments(ctx, files)
	outbound := text
	if len(attachedNames) > 0 {
		outbound = fmt.Sprintf("%s\n\n[Attached files: %s]", text, strings.Join(attachedNames, ", "))
	}

	// Both sides of the turn commit together. The admin message is staged
	// first so the remote call failing rolls it back with the transaction.
	var result *ChatResult
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		adminMsg := &model.Message{
			ID:             id.New(),
			ConversationID: conv.ID,
			Author:         model.AuthorAdmin,
			Text:           text,
		}
		if err := stores.Messages().Create(ctx, adminMsg); err != nil {
			return fmt.Errorf("staging admin message: %w", err)
		}

		reply, err := s.agent.SendMessage(ctx, conv.ExternalThreadID, outbound, fileIDs)
		if err != nil {
			slog.ErrorContext(ctx, "agent message round-trip failed", "error", err)
			return fmt.Errorf("%w: %w", ErrAgentUnavailable, err)
		}

		agentMsg := &model.Message{
			ID:             id.New(),
			ConversationID: conv.ID,
			Author:         model.AuthorAgent,
			Text:           reply.Text,
		}
		if err := stores.Messages().Create(ctx, agentMsg); err != nil {
			return fmt.Errorf("staging agent message: %w", err)
		}

		result = &ChatResult{
			Reply:            reply.Text,
			Raw:              reply.Raw,
			ExternalThreadID: conv.ExternalThreadID,
			AdminMessage:     adminMsg,
			AgentMessage:     agentMsg,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "chat turn completed",
		"admin_message_id", result.AdminMessage.ID,
		"agent_message_id", result.AgentMessage.ID,
		"attached_files", len(fileIDs),
	)
	return result, nil
}

// uploadAttachments pushes files to the agent's file storage. A failed upload
// is logged and skipped; the turn proceeds without that attachment.
func (s *chatService) uploadAttachments(ctx context.Context, files []Attachment) ([]string, []string) {
	var fileIDs, names []string
	for _, file := range files {
		fileID, err := s.agent.UploadDocument(ctx, file.Data, file.Filename, file.ContentType)
		if err != nil {
			slog.WarnContext(ctx, "attachment upload failed, sending message without it",
				"filename", file.Filename,
				"error", err,
			)
			continue
		}
		fileIDs = append(fileIDs, fileID)
		names = append(names, file.Filename)
	}
	return fileIDs, names
}
