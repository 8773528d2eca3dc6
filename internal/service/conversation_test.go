package service_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"jobpromax.app/agent-api/common/id"
	"jobpromax.app/agent-api/internal/model"
	"jobpromax.app/agent-api/internal/service"
	"jobpromax.app/agent-api/internal/store"
)

var _ = Describe("ConversationService", func() {
	var (
		convStore     *mockConversationStore
		customerStore *mockCustomerStore
		agentMock     *mockAgentClient
		ctx           context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		convStore = &mockConversationStore{}
		customerStore = &mockCustomerStore{}
		agentMock = &mockAgentClient{}

		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())
	})

	newService := func(development bool) service.ConversationService {
		return service.NewConversationService(convStore, customerStore, agentMock, development)
	}

	Describe("Create", func() {
		It("binds the conversation to the remote thread", func() {
			agentMock.createThreadFn = func(_ context.Context) (string, error) {
				return "th_abc", nil
			}
			var captured *model.Conversation
			convStore.createFn = func(_ context.Context, conv *model.Conversation) error {
				captured = conv
				return nil
			}

			conv, err := newService(false).Create(ctx, 42, "Job hunt")

			Expect(err).NotTo(HaveOccurred())
			Expect(conv.ExternalThreadID).To(Equal("th_abc"))
			Expect(conv.CustomerID).To(Equal(int64(42)))
			Expect(conv.ID).NotTo(BeZero())
			Expect(captured).To(Equal(conv))
		})

		It("fails when the customer does not exist", func() {
			customerStore.getByIDFn = func(_ context.Context, _ int64) (*model.Customer, error) {
				return nil, store.ErrNotFound
			}

			_, err := newService(false).Create(ctx, 42, "Job hunt")
			Expect(err).To(MatchError(store.ErrNotFound))
		})

		It("refuses a thread already bound to another conversation", func() {
			agentMock.createThreadFn = func(_ context.Context) (string, error) {
				return "th_abc", nil
			}
			convStore.getByThreadIDFn = func(_ context.Context, threadID string) (*model.Conversation, error) {
				return &model.Conversation{ID: 9, ExternalThreadID: threadID}, nil
			}
			created := false
			convStore.createFn = func(_ context.Context, _ *model.Conversation) error {
				created = true
				return nil
			}

			_, err := newService(false).Create(ctx, 42, "Job hunt")

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("already bound"))
			Expect(created).To(BeFalse())
		})

		Context("when the remote thread cannot be created", func() {
			BeforeEach(func() {
				agentMock.createThreadFn = func(_ context.Context) (string, error) {
					return "", errors.New("connection refused")
				}
			})

			It("falls back to a mock thread in development", func() {
				conv, err := newService(true).Create(ctx, 42, "Job hunt")

				Expect(err).NotTo(HaveOccurred())
				Expect(strings.HasPrefix(conv.ExternalThreadID, "mock-")).To(BeTrue())
				Expect(conv.ExternalThreadID).To(HaveLen(len("mock-") + 16))
			})

			It("surfaces a gateway error in production", func() {
				_, err := newService(false).Create(ctx, 42, "Job hunt")

				Expect(err).To(MatchError(service.ErrAgentUnavailable))
			})
		})
	})

	Describe("Delete", func() {
		It("returns not found for a missing conversation", func() {
			err := newService(false).Delete(ctx, 99)
			Expect(err).To(MatchError(store.ErrNotFound))
		})

		It("deletes an existing conversation", func() {
			convStore.getByIDFn = func(_ context.Context, convID int64) (*model.Conversation, error) {
				return &model.Conversation{ID: convID, ExternalThreadID: "th_abc"}, nil
			}
			var deleted int64
			convStore.deleteFn = func(_ context.Context, convID int64) error {
				deleted = convID
				return nil
			}

			Expect(newService(false).Delete(ctx, 7)).To(Succeed())
			Expect(deleted).To(Equal(int64(7)))
		})
	})

	Describe("ListByCustomer", func() {
		It("returns the customer's conversations", func() {
			convStore.listByCustomerFn = func(_ context.Context, customerID int64) ([]model.Conversation, error) {
				return []model.Conversation{{ID: 1, CustomerID: customerID}}, nil
			}

			convs, err := newService(false).ListByCustomer(ctx, 42)

			Expect(err).NotTo(HaveOccurred())
			Expect(convs).To(HaveLen(1))
		})
	})
})
