package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
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

var _ = Describe("ChatHandler", func() {
	var (
		router *gin.Engine
		svc    *mockChatService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockChatService{}
		h := handler.NewChatHandler(svc)
		router.POST("/chat/conversations/:id/messages", h.Send)
	})

	turnResult := func(reply string) *service.ChatResult {
		return &service.ChatResult{
			Reply:            reply,
			ExternalThreadID: "th_abc",
			AdminMessage:     &model.Message{ID: 1, ConversationID: 7, Author: model.AuthorAdmin, Text: "Hello"},
			AgentMessage:     &model.Message{ID: 2, ConversationID: 7, Author: model.AuthorAgent, Text: reply},
		}
	}

	It("relays a JSON chat message and returns both sides of the turn", func() {
		var gotID int64
		var gotText string
		svc.sendMessageFn = func(_ context.Context, conversationID int64, text string, files []service.Attachment) (*service.ChatResult, error) {
			gotID = conversationID
			gotText = text
			Expect(files).To(BeEmpty())
			return turnResult("Hi, how can I help?"), nil
		}

		body, _ := json.Marshal(map[string]string{"message": "Hello"})
		req := httptest.NewRequest(http.MethodPost, "/chat/conversations/7/messages", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotID).To(Equal(int64(7)))
		Expect(gotText).To(Equal("Hello"))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["reply"]).To(Equal("Hi, how can I help?"))
		Expect(resp["external_thread_id"]).To(Equal("th_abc"))
		admin := resp["admin_message"].(map[string]any)
		agent := resp["agent_message"].(map[string]any)
		Expect(admin["author"]).To(Equal("admin"))
		Expect(agent["author"]).To(Equal("agent"))
	})

	It("accepts a multipart form with message and files", func() {
		var gotFiles []service.Attachment
		svc.sendMessageFn = func(_ context.Context, _ int64, text string, files []service.Attachment) (*service.ChatResult, error) {
			Expect(text).To(Equal("review this"))
			gotFiles = files
			return turnResult("Looks good."), nil
		}

		var body bytes.Buffer
		form := multipart.NewWriter(&body)
		Expect(form.WriteField("message", "review this")).To(Succeed())
		part, err := form.CreateFormFile("files", "resume.pdf")
		Expect(err).NotTo(HaveOccurred())
		_, err = part.Write([]byte("%PDF-1.4"))
		Expect(err).NotTo(HaveOccurred())
		Expect(form.Close()).To(Succeed())

		req := httptest.NewRequest(http.MethodPost, "/chat/conversations/7/messages", &body)
		req.Header.Set("Content-Type", form.FormDataContentType())
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotFiles).To(HaveLen(1))
		Expect(gotFiles[0].Filename).To(Equal("resume.pdf"))
		Expect(gotFiles[0].Data).To(Equal([]byte("%PDF-1.4")))
	})

	It("returns 400 when the message is missing", func() {
		req := httptest.NewRequest(http.MethodPost, "/chat/conversations/7/messages", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for an unknown conversation", func() {
		svc.sendMessageFn = func(_ context.Context, _ int64, _ string, _ []service.Attachment) (*service.ChatResult, error) {
			return nil, store.ErrNotFound
		}

		body, _ := json.Marshal(map[string]string{"message": "Hello"})
		req := httptest.NewRequest(http.MethodPost, "/chat/conversations/99/messages", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 502 when the agent round-trip fails", func() {
		svc.sendMessageFn = func(_ context.Context, _ int64, _ string, _ []service.Attachment) (*service.ChatResult, error) {
			return nil, service.ErrAgentUnavailable
		}

		body, _ := json.Marshal(map[string]string{"message": "Hello"})
		req := httptest.NewRequest(http.MethodPost, "/chat/conversations/7/messages", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadGateway))
	})

	It("returns 400 for a non-numeric conversation id", func() {
		body, _ := json.Marshal(map[string]string{"message": "Hello"})
		req := httptest.NewRequest(http.MethodPost, "/chat/conversations/abc/messages", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
