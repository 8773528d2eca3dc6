package model

import "time"

// Message author constants. Every chat turn appends exactly one message per
// author, in admin-then-agent order.
const (
	AuthorAdmin = "admin"
	AuthorAgent = "agent"
)

// Message is an append-only chat record. Rows are never updated after creation.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	Author         string    `json:"author"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}
