package dto

import (
	"time"

	"jobpromax.app/agent-api/internal/model"
)

type DocumentResponse struct {
	ID         int64     `json:"id,string"`
	CustomerID int64     `json:"customer_id,string"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Type       *string   `json:"type,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToDocumentResponse(doc *model.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:         doc.ID,
		CustomerID: doc.CustomerID,
		Title:      doc.Title,
		URL:        doc.URL,
		Type:       doc.Type,
		CreatedAt:  doc.CreatedAt,
	}
}

func ToDocumentResponses(docs []model.Document) []DocumentResponse {
	out := make([]DocumentResponse, len(docs))
	for i := range docs {
		out[i] = *ToDocumentResponse(&docs[i])
	}
	return out
}
