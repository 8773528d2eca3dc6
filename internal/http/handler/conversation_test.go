package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"jobpromax.app/agent-api/internal/http/handler"
	"jobpromax.app/agent-api/internal/model"
	"jobpromax.app/agent-api/internal/service"
	"jobpromax.app/agent-api/internal/store"
)

var _ = Describe("ConversationHandler", func() {
	var (
		router *gin.Engine
		svc    *mockConversationService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockConversationService{}
		h := handler.NewConversationHandler(svc)
		router.POST("/conversations", h.Create)
		router.GET("/conversations/customer/:customerID", h.ListByCustomer)
		router.DELETE("/conversations/:id", h.Delete)
	})

	It("creates a conversation bound to a remote thread", func() {
		svc.createFn = func(_ context.Context, customerID int64, title string) (*model.Conversation, error) {
			return &model.Conversation{ID: 7, CustomerID: customerID, Title: title, ExternalThreadID: "th_abc"}, nil
		}

		body, _ := json.Marshal(map[string]string{
			"customer_id": "42",
			"title":       "Job hunt",
		})
		req := httptest.NewRequest(http.MethodPost, "/conversations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["external_thread_id"]).To(Equal("th_abc"))
		Expect(resp["customer_id"]).To(Equal("42"))
	})

	It("returns 502 when the remote thread cannot be created", func() {
		svc.createFn = func(_ context.Context, _ int64, _ string) (*model.Conversation, error) {
			return nil, service.ErrAgentUnavailable
		}

		body, _ := json.Marshal(map[string]string{
			"customer_id": "42",
			"title":       "Job hunt",
		})
		req := httptest.NewRequest(http.MethodPost, "/conversations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadGateway))
	})

	It("returns 404 when the customer does not exist", func() {
		svc.createFn = func(_ context.Context, _ int64, _ string) (*model.Conversation, error) {
			return nil, store.ErrNotFound
		}

		body, _ := json.Marshal(map[string]string{
			"customer_id": "42",
			"title":       "Job hunt",
		})
		req := httptest.NewRequest(http.MethodPost, "/conversations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("lists a customer's conversations", func() {
		svc.listByCustomerFn = func(_ context.Context, customerID int64) ([]model.Conversation, error) {
			return []model.Conversation{{ID: 1, CustomerID: customerID}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/conversations/customer/42", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("deletes a conversation with 204", func() {
		var deleted int64
		svc.deleteFn = func(_ context.Context, conversationID int64) error {
			deleted = conversationID
			return nil
		}

		req := httptest.NewRequest(http.MethodDelete, "/conversations/7", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(deleted).To(Equal(int64(7)))
	})

	It("returns 404 when deleting a missing conversation", func() {
		svc.deleteFn = func(_ context.Context, _ int64) error {
			return store.ErrNotFound
		}

		req := httptest.NewRequest(http.MethodDelete, "/conversations/99", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
