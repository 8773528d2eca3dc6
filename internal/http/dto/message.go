package dto

import (
	"time"

	"jobpromax.app/agent-api/internal/model"
	"jobpromax.app/agent-api/internal/service"
)

type MessageResponse struct {
	ID             int64     `json:"id,string"`
	ConversationID int64     `json:"conversation_id,string"`
	Author         string    `json:"author"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToMessageResponse(msg *model.Message) *MessageResponse {
	return &MessageResponse{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		Author:         msg.Author,
		Text:           msg.Text,
		CreatedAt:      msg.CreatedAt,
	}
}

func ToMessageResponses(msgs []model.Message) []MessageResponse {
	out := make([]MessageResponse, len(msgs))
	for i := range msgs {
		out[i] = *ToMessageResponse(&msgs[i])
	}
	return out
}

type ChatMessageRequest struct {
	Message string `json:"message" binding:"required,min=1"`
}

type ChatMessageResponse struct {
	Reply            string           `json:"reply"`
	Raw              map[string]any   `json:"raw,omitempty"`
	ExternalThreadID string           `json:"external_thread_id"`
	AdminMessage     *MessageResponse `json:"admin_message"`
	AgentMessage     *MessageResponse `json:"agent_message"`
}

func ToChatMessageResponse(result *service.ChatResult) *ChatMessageResponse {
	return &ChatMessageResponse{
		Reply:            result.Reply,
		Raw:              result.Raw,
		ExternalThreadID: result.ExternalThreadID,
		AdminMessage:     ToMessageResponse(result.AdminMessage),
		AgentMessage:     ToMessageResponse(result.AgentMessage),
	}
}
