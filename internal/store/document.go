package store

import (
	"context"

	"jobpromax.app/agent-api/core/db/sqlc"
	"jobpromax.app/agent-api/internal/model"
)

type documentStore struct {
	queries *sqlc.Queries
}

func newDocumentStore(queries *sqlc.Queries) DocumentStore {
	return &documentStore{queries: queries}
}

func (s *documentStore) Create(ctx context.Context, doc *model.Document) error {
	row, err := s.queries.CreateDocument(ctx, sqlc.CreateDocumentParams{
		ID:         doc.ID,
		CustomerID: doc.CustomerID,
		Title:      doc.Title,
		Url:        doc.URL,
		Type:       doc.Type,
	})
	if err != nil {
		return err
	}
	*doc = *toDocumentModel(row)
	return nil
}

func (s *documentStore) ListByCustomer(ctx context.Context, customerID int64) ([]model.Document, error) {
	rows, err := s.queries.ListDocumentsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Document, len(rows))
	for i, row := range rows {
		result[i] = *toDocumentModel(row)
	}
	return result, nil
}

func toDocumentModel(row sqlc.Document) *model.Document {
	return &model.Document{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Title:      row.Title,
		URL:        row.Url,
		Type:       row.Type,
		CreatedAt:  row.CreatedAt.Time,
	}
}
