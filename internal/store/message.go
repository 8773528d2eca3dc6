package store

import (
	"context"

	"jobpromax.app/agent-api/core/db/sqlc"
	"jobpromax.app/agent-api/internal/model"
)

type messageStore struct {
	queries *sqlc.Queries
}

func newMessageStore(queries *sqlc.Queries) MessageStore {
	return &messageStore{queries: queries}
}

func (s *messageStore) Create(ctx context.Context, msg *model.Message) error {
	row, err := s.queries.CreateMessage(ctx, sqlc.CreateMessageParams{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		Author:         msg.Author,
		Text:           msg.Text,
	})
	if err != nil {
		return err
	}
	*msg = *toMessageModel(row)
	return nil
}

func (s *messageStore) ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	rows, err := s.queries.ListMessagesByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Message, len(rows))
	for i, row := range rows {
		result[i] = *toMessageModel(row)
	}
	return result, nil
}

func toMessageModel(row sqlc.Message) *model.Message {
	return &model.Message{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		Author:         row.Author,
		Text:           row.Text,
		CreatedAt:      row.CreatedAt.Time,
	}
}
