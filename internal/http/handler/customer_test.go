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

var _ = Describe("CustomerHandler", func() {
	var (
		router *gin.Engine
		svc    *mockCustomerService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockCustomerService{}
		h := handler.NewCustomerHandler(svc)
		router.POST("/customers", h.Create)
		router.GET("/customers", h.List)
		router.GET("/customers/:id", h.GetByID)
	})

	It("creates a customer and returns 201", func() {
		svc.createFn = func(_ context.Context, fullName, email string, _, _ *string) (*model.Customer, error) {
			return &model.Customer{ID: 123, FullName: fullName, Email: email}, nil
		}

		body, _ := json.Marshal(map[string]string{
			"full_name": "Ada Lovelace",
			"email":     "ada@example.com",
		})
		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["id"]).To(Equal("123"))
		Expect(resp["full_name"]).To(Equal("Ada Lovelace"))
	})

	It("returns 409 for a duplicate email", func() {
		svc.createFn = func(_ context.Context, _, _ string, _, _ *string) (*model.Customer, error) {
			return nil, service.ErrEmailTaken
		}

		body, _ := json.Marshal(map[string]string{
			"full_name": "Ada Lovelace",
			"email":     "ada@example.com",
		})
		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("returns 400 for an invalid email", func() {
		body, _ := json.Marshal(map[string]string{
			"full_name": "Ada Lovelace",
			"email":     "not-an-email",
		})
		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("lists customers", func() {
		svc.listFn = func(_ context.Context) ([]model.Customer, error) {
			return []model.Customer{{ID: 1}, {ID: 2}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(2))
	})

	It("returns 404 for a missing customer", func() {
		svc.getByIDFn = func(_ context.Context, _ int64) (*model.Customer, error) {
			return nil, store.ErrNotFound
		}

		req := httptest.NewRequest(http.MethodGet, "/customers/99", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
