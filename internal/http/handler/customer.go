package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"jobpromax.app/agent-api/internal/http/dto"
	"jobpromax.app/agent-api/internal/service"
	"jobpromax.app/agent-api/internal/store"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.customerService.Create(ctx, req.FullName, req.Email, req.Title, req.Location)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, service.ErrEmailTaken) || (errors.As(err, &pgErr) && pgErr.Code == "23505") {
			slog.InfoContext(ctx, "duplicate customer creation attempted", "email", req.Email)
			c.JSON(http.StatusConflict, gin.H{"error": "customer with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

func (h *CustomerHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	customers, err := h.customerService.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list customers", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to load customer", "error", err, "customer_id", customerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customer"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}
