package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"jobpromax.app/agent-api/core/db/sqlc"
	"jobpromax.app/agent-api/internal/model"
)

type customerStore struct {
	queries *sqlc.Queries
}

func newCustomerStore(queries *sqlc.Queries) CustomerStore {
	return &customerStore{queries: queries}
}

func (s *customerStore) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	row, err := s.queries.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toCustomerModel(row), nil
}

func (s *customerStore) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	row, err := s.queries.GetCustomerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toCustomerModel(row), nil
}

func (s *customerStore) Create(ctx context.Context, customer *model.Customer) error {
	row, err := s.queries.CreateCustomer(ctx, sqlc.CreateCustomerParams{
		ID:       customer.ID,
		FullName: customer.FullName,
		Email:    customer.Email,
		Title:    customer.Title,
		Location: customer.Location,
	})
	if err != nil {
		return err
	}
	*customer = *toCustomerModel(row)
	return nil
}

func (s *customerStore) List(ctx context.Context) ([]model.Customer, error) {
	rows, err := s.queries.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]model.Customer, len(rows))
	for i, row := range rows {
		result[i] = *toCustomerModel(row)
	}
	return result, nil
}

func toCustomerModel(row sqlc.Customer) *model.Customer {
	return &model.Customer{
		ID:        row.ID,
		FullName:  row.FullName,
		Email:     row.Email,
		Title:     row.Title,
		Location:  row.Location,
		CreatedAt: row.CreatedAt.Time,
	}
}
