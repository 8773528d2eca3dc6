package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"jobpromax.app/agent-api/common/id"
	"jobpromax.app/agent-api/internal/model"
	"jobpromax.app/agent-api/internal/store"
)

// ErrEmailTaken is returned when a customer with the same email already exists.
var ErrEmailTaken = errors.New("email already registered")

type CustomerService interface {
	Create(ctx context.Context, fullName, email string, title, location *string) (*model.Customer, error)
	GetByID(ctx context.Context, customerID int64) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}

type customerService struct {
	customerStore store.CustomerStore
}

func NewCustomerService(customerStore store.CustomerStore) CustomerService {
	return &customerService{customerStore: customerStore}
}

func (s *customerService) Create(ctx context.Context, fullName, email string, title, location *string) (*model.Customer, error) {
	existing, err := s.customerStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking customer email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	customer := &model.Customer{
		ID:       id.New(),
		FullName: fullName,
		Email:    email,
		Title:    title,
		Location: location,
	}

	if err := s.customerStore.Create(ctx, customer); err != nil {
		slog.ErrorContext(ctx, "failed to create customer",
			"error", err,
			"email", email,
		)
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	slog.InfoContext(ctx, "customer created", "customer_id", customer.ID)
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, customerID int64) (*model.Customer, error) {
	return s.customerStore.GetByID(ctx, customerID)
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return customers, nil
}
