package service

import (
	"jobpromax.app/agent-api/internal/agent"
	"jobpromax.app/agent-api/internal/store"
)

type Services struct {
	stores      *store.Stores
	txRunner    TxRunner
	agent       agent.Client
	development bool
}

func NewServices(stores *store.Stores, txRunner TxRunner, agentClient agent.Client, development bool) *Services {
	return &Services{
		stores:      stores,
		txRunner:    txRunner,
		agent:       agentClient,
		development: development,
	}
}

func (s *Services) Customers() CustomerService {
	return NewCustomerService(s.stores.Customers())
}

func (s *Services) Conversations() ConversationService {
	return NewConversationService(s.stores.Conversations(), s.stores.Customers(), s.agent, s.development)
}

func (s *Services) Chat() ChatService {
	return NewChatService(s.stores.Conversations(), s.txRunner, s.agent)
}

func (s *Services) Messages() MessageService {
	return NewMessageService(s.stores.Messages(), s.stores.Conversations())
}

func (s *Services) Documents() DocumentService {
	return NewDocumentService(s.stores.Documents(), s.stores.Customers(), s.agent)
}
