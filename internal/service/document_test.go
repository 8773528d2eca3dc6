package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"jobpromax.app/agent-api/common/id"
	"jobpromax.app/agent-api/internal/model"
	"jobpromax.app/agent-api/internal/service"
)

var _ = Describe("DocumentService", func() {
	var (
		svc           service.DocumentService
		docStore      *mockDocumentStore
		customerStore *mockCustomerStore
		agentMock     *mockAgentClient
		ctx           context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		docStore = &mockDocumentStore{}
		customerStore = &mockCustomerStore{}
		agentMock = &mockAgentClient{}

		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())

		svc = service.NewDocumentService(docStore, customerStore, agentMock)
	})

	Describe("Upload", func() {
		resume := service.Attachment{
			Filename:    "resume.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4"),
		}

		It("stores a remote file pointer when the upload succeeds", func() {
			agentMock.uploadDocumentFn = func(_ context.Context, _ []byte, _, _ string) (string, error) {
				return "file_abc123", nil
			}
			var captured *model.Document
			docStore.createFn = func(_ context.Context, doc *model.Document) error {
				captured = doc
				return nil
			}

			docType := "resume"
			doc, err := svc.Upload(ctx, 42, "My resume", resume, &docType)

			Expect(err).NotTo(HaveOccurred())
			Expect(doc.URL).To(Equal("openai-file://file_abc123"))
			Expect(doc.CustomerID).To(Equal(int64(42)))
			Expect(*doc.Type).To(Equal("resume"))
			Expect(captured).To(Equal(doc))
		})

		It("keeps a local placeholder when the remote upload fails", func() {
			agentMock.uploadDocumentFn = func(_ context.Context, _ []byte, _, _ string) (string, error) {
				return "", errors.New("storage unavailable")
			}

			doc, err := svc.Upload(ctx, 42, "My resume", resume, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(doc.URL).To(Equal("/files/resume.pdf"))
		})

		It("defaults the filename when absent", func() {
			agentMock.uploadDocumentFn = func(_ context.Context, _ []byte, _, _ string) (string, error) {
				return "", errors.New("storage unavailable")
			}

			doc, err := svc.Upload(ctx, 42, "Untitled", service.Attachment{Data: []byte("x")}, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(doc.URL).To(Equal("/files/uploaded_file"))
		})
	})

	Describe("ListByCustomer", func() {
		It("returns the customer's documents", func() {
			docStore.listByCustomerFn = func(_ context.Context, customerID int64) ([]model.Document, error) {
				return []model.Document{{ID: 1, CustomerID: customerID}}, nil
			}

			docs, err := svc.ListByCustomer(ctx, 42)

			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(1))
		})
	})
})
