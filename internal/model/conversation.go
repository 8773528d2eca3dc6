package model

import "time"

// Conversation binds a local record to exactly one thread on the external
// job-apply agent. ExternalThreadID is unique and immutable once created; the
// remote service owns the thread's lifetime.
type Conversation struct {
	ID               int64     `json:"id"`
	CustomerID       int64     `json:"customer_id"`
	Title            string    `json:"title"`
	ExternalThreadID string    `json:"external_thread_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
