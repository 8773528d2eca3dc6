package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"jobpromax.app/agent-api/core/db/sqlc"
	"jobpromax.app/agent-api/internal/model"
)

type conversationStore struct {
	queries *sqlc.Queries
}

func newConversationStore(queries *sqlc.Queries) ConversationStore {
	return &conversationStore{queries: queries}
}

func (s *conversationStore) GetByID(ctx context.Context, id int64) (*model.Conversation, error) {
	row, err := s.queries.GetConversation(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toConversationModel(row), nil
}

func (s *conversationStore) GetByThreadID(ctx context.Context, externalThreadID string) (*model.Conversation, error) {
	row, err := s.queries.GetConversationByThreadID(ctx, externalThreadID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toConversationModel(row), nil
}

func (s *conversationStore) Create(ctx context.Context, conv *model.Conversation) error {
	row, err := s.queries.CreateConversation(ctx, sqlc.CreateConversationParams{
		ID:               conv.ID,
		CustomerID:       conv.CustomerID,
		Title:            conv.Title,
		ExternalThreadID: conv.ExternalThreadID,
	})
	if err != nil {
		return err
	}
	*conv = *toConversationModel(row)
	return nil
}

func (s *conversationStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteConversation(ctx, id)
}

func (s *conversationStore) ListByCustomer(ctx context.Context, customerID int64) ([]model.Conversation, error) {
	rows, err := s.queries.ListConversationsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Conversation, len(rows))
	for i, row := range rows {
		result[i] = *toConversationModel(row)
	}
	return result, nil
}

func toConversationModel(row sqlc.Conversation) *model.Conversation {
	return &model.Conversation{
		ID:               row.ID,
		CustomerID:       row.CustomerID,
		Title:            row.Title,
		ExternalThreadID: row.ExternalThreadID,
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}
