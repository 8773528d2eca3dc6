package model

import "time"

// Document associates a customer with an uploaded artifact. URL is either an
// openai-file://<id> pointer into remote file storage or a local /files/<name>
// placeholder when the remote upload did not happen.
type Document struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Type       *string   `json:"type,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
