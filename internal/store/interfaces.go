package store

import (
	"context"
	"errors"

	"jobpromax.app/agent-api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// CustomerStore defines the contract for customer data access
type CustomerStore interface {
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	Create(ctx context.Context, customer *model.Customer) error
	List(ctx context.Context) ([]model.Customer, error)
}

// ConversationStore defines the contract for conversation data access
type ConversationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Conversation, error)
	GetByThreadID(ctx context.Context, externalThreadID string) (*model.Conversation, error)
	Create(ctx context.Context, conv *model.Conversation) error
	Delete(ctx context.Context, id int64) error // cascades to messages
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Conversation, error)
}

// MessageStore defines the contract for message data access.
// Messages are append-only; there is no update path.
type MessageStore interface {
	Create(ctx context.Context, msg *model.Message) error
	ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error)
}

// DocumentStore defines the contract for document data access
type DocumentStore interface {
	Create(ctx context.Context, doc *model.Document) error
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Document, error)
}
