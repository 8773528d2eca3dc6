package store

import (
	"jobpromax.app/agent-api/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Customers() CustomerStore {
	return newCustomerStore(s.queries)
}

func (s *Stores) Conversations() ConversationStore {
	return newConversationStore(s.queries)
}

func (s *Stores) Messages() MessageStore {
	return newMessageStore(s.queries)
}

func (s *Stores) Documents() DocumentStore {
	return newDocumentStore(s.queries)
}
