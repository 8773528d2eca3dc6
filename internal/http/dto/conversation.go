package dto

import (
	"time"

	"jobpromax.app/agent-api/internal/model"
)

type CreateConversationRequest struct {
	CustomerID int64  `json:"customer_id,string" binding:"required"`
	Title      string `json:"title" binding:"required,min=1,max=255"`
}

type ConversationResponse struct {
	ID               int64     `json:"id,string"`
	CustomerID       int64     `json:"customer_id,string"`
	Title            string    `json:"title"`
	ExternalThreadID string    `json:"external_thread_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToConversationResponse(conv *model.Conversation) *ConversationResponse {
	return &ConversationResponse{
		ID:               conv.ID,
		CustomerID:       conv.CustomerID,
		Title:            conv.Title,
		ExternalThreadID: conv.ExternalThreadID,
		CreatedAt:        conv.CreatedAt,
		UpdatedAt:        conv.UpdatedAt,
	}
}

func ToConversationResponses(convs []model.Conversation) []ConversationResponse {
	out := make([]ConversationResponse, len(convs))
	for i := range convs {
		out[i] = *ToConversationResponse(&convs[i])
	}
	return out
}
