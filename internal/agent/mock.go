package agent

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
)

// mockClient is the development backend. It allocates synthetic thread IDs
// and answers every message locally so the rest of the stack can be exercised
// without remote credentials.
type mockClient struct{}

func newMockClient() Client {
	return &mockClient{}
}

// NewMockThreadID returns a synthetic thread ID in the mock-<16 hex> form.
// It is also used by the conversation service when a remote backend is
// unreachable in development.
func NewMockThreadID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(fmt.Sprintf("read random bytes: %v", err))
	}
	return "mock-" + hex.EncodeToString(buf)
}

func (c *mockClient) CreateThread(ctx context.Context) (string, error) {
	threadID := NewMockThreadID()
	slog.InfoContext(ctx, "created mock thread",
		"thread_id", threadID, "component", "agent.mock")
	return threadID, nil
}

func (c *mockClient) SendMessage(ctx context.Context, threadID, text string, fileIDs []string) (*Reply, error) {
	reply := fmt.Sprintf("Mock agent reply to: %s", text)
	if len(fileIDs) > 0 {
		reply = fmt.Sprintf("%s (received %d attached file(s))", reply, len(fileIDs))
	}
	return &Reply{
		Text: reply,
		Raw: map[string]any{
			"messages": []map[string]any{{"type": "ai", "content": reply}},
		},
	}, nil
}

func (c *mockClient) UploadDocument(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	return "mock-file-" + NewMockThreadID()[5:], nil
}
