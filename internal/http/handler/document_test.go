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

func buildUploadForm(fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = writer.WriteField(k, v)
	}
	if filename != "" {
		part, _ := writer.CreateFormFile("file", filename)
		_, _ = part.Write(content)
	}
	_ = writer.Close()
	return &buf, writer.FormDataContentType()
}

var _ = Describe("DocumentHandler", func() {
	var (
		router *gin.Engine
		svc    *mockDocumentService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockDocumentService{}
		h := handler.NewDocumentHandler(svc)
		router.POST("/documents/upload", h.Upload)
		router.GET("/documents/customer/:customerID", h.ListByCustomer)
	})

	It("uploads a document and returns 201", func() {
		var gotFile service.Attachment
		svc.uploadFn = func(_ context.Context, customerID int64, title string, file service.Attachment, docType *string) (*model.Document, error) {
			gotFile = file
			Expect(customerID).To(Equal(int64(42)))
			Expect(title).To(Equal("Resume"))
			Expect(docType).NotTo(BeNil())
			Expect(*docType).To(Equal("resume"))
			return &model.Document{ID: 9, CustomerID: customerID, Title: title, URL: "openai-file://file_abc"}, nil
		}

		buf, contentType := buildUploadForm(map[string]string{
			"customer_id": "42",
			"title":       "Resume",
			"type":        "resume",
		}, "resume.pdf", []byte("%PDF-1.4 resume"))

		req := httptest.NewRequest(http.MethodPost, "/documents/upload", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(gotFile.Filename).To(Equal("resume.pdf"))
		Expect(gotFile.Data).To(Equal([]byte("%PDF-1.4 resume")))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["url"]).To(Equal("openai-file://file_abc"))
	})

	It("rejects an upload without a file", func() {
		buf, contentType := buildUploadForm(map[string]string{
			"customer_id": "42",
			"title":       "Resume",
		}, "", nil)

		req := httptest.NewRequest(http.MethodPost, "/documents/upload", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("rejects an upload without a title", func() {
		buf, contentType := buildUploadForm(map[string]string{
			"customer_id": "42",
		}, "resume.pdf", []byte("data"))

		req := httptest.NewRequest(http.MethodPost, "/documents/upload", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("rejects an invalid customer_id", func() {
		buf, contentType := buildUploadForm(map[string]string{
			"customer_id": "not-a-number",
			"title":       "Resume",
		}, "resume.pdf", []byte("data"))

		req := httptest.NewRequest(http.MethodPost, "/documents/upload", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 when the customer does not exist", func() {
		svc.uploadFn = func(_ context.Context, _ int64, _ string, _ service.Attachment, _ *string) (*model.Document, error) {
			return nil, store.ErrNotFound
		}

		buf, contentType := buildUploadForm(map[string]string{
			"customer_id": "42",
			"title":       "Resume",
		}, "resume.pdf", []byte("data"))

		req := httptest.NewRequest(http.MethodPost, "/documents/upload", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("lists a customer's documents", func() {
		svc.listByCustomerFn = func(_ context.Context, customerID int64) ([]model.Document, error) {
			return []model.Document{{ID: 1, CustomerID: customerID, Title: "Resume"}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/documents/customer/42", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
	})
})
