package handler_test

import (
	"context"

	"jobpromax.app/agent-api/internal/model"
	"jobpromax.app/agent-api/internal/service"
)

type mockCustomerService struct {
	createFn  func(ctx context.Context, fullName, email string, title, location *string) (*model.Customer, error)
	getByIDFn func(ctx context.Context, customerID int64) (*model.Customer, error)
	listFn    func(ctx context.Context) ([]model.Customer, error)
}

func (m *mockCustomerService) Create(ctx context.Context, fullName, email string, title, location *string) (*model.Customer, error) {
	if m.createFn != nil {
		return m.createFn(ctx, fullName, email, title, location)
	}
	return nil, nil
}

func (m *mockCustomerService) GetByID(ctx context.Context, customerID int64) (*model.Customer, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *mockCustomerService) List(ctx context.Context) ([]model.Customer, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockConversationService struct {
	createFn         func(ctx context.Context, customerID int64, title string) (*model.Conversation, error)
	getByIDFn        func(ctx context.Context, conversationID int64) (*model.Conversation, error)
	listByCustomerFn func(ctx context.Context, customerID int64) ([]model.Conversation, error)
	deleteFn         func(ctx context.Context, conversationID int64) error
}

func (m *mockConversationService) Create(ctx context.Context, customerID int64, title string) (*model.Conversation, error) {
	if m.createFn != nil {
		return m.createFn(ctx, customerID, title)
	}
	return nil, nil
}

func (m *mockConversationService) GetByID(ctx context.Context, conversationID int64) (*model.Conversation, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, conversationID)
	}
	return nil, nil
}

func (m *mockConversationService) ListByCustomer(ctx context.Context, customerID int64) ([]model.Conversation, error) {
	if m.listByCustomerFn != nil {
		return m.listByCustomerFn(ctx, customerID)
	}
	return nil, nil
}

func (m *mockConversationService) Delete(ctx context.Context, conversationID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, conversationID)
	}
	return nil
}

type mockChatService struct {
	sendMessageFn func(ctx context.Context, conversationID int64, text string, files []service.Attachment) (*service.ChatResult, error)
}

func (m *mockChatService) SendMessage(ctx context.Context, conversationID int64, text string, files []service.Attachment) (*service.ChatResult, error) {
	if m.sendMessageFn != nil {
		return m.sendMessageFn(ctx, conversationID, text, files)
	}
	return nil, nil
}

type mockMessageService struct {
	listByConversationFn func(ctx context.Context, conversationID int64) ([]model.Message, error)
}

func (m *mockMessageService) ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	if m.listByConversationFn != nil {
		return m.listByConversationFn(ctx, conversationID)
	}
	return nil, nil
}

type mockDocumentService struct {
	uploadFn         func(ctx context.Context, customerID int64, title string, file service.Attachment, docType *string) (*model.Document, error)
	listByCustomerFn func(ctx context.Context, customerID int64) ([]model.Document, error)
}

func (m *mockDocumentService) Upload(ctx context.Context, customerID int64, title string, file service.Attachment, docType *string) (*model.Document, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, customerID, title, file, docType)
	}
	return nil, nil
}

func (m *mockDocumentService) ListByCustomer(ctx context.Context, customerID int64) ([]model.Document, error) {
	if m.listByCustomerFn != nil {
		return m.listByCustomerFn(ctx, customerID)
	}
	return nil, nil
}
