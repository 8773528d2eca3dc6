package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"jobpromax.app/agent-api/common/logger"
)

// langGraphClient talks to the earlier LangGraph-style agent deployment over
// its bespoke HTTP thread/run API. It is kept for environments still pointed
// at that service.
type langGraphClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func newLangGraphClient(cfg Config) (Client, error) {
	if cfg.LangGraphBaseURL == "" {
		return nil, fmt.Errorf("JOB_APPLY_API_BASE is missing: %w", ErrNotConfigured)
	}
	return &langGraphClient{
		baseURL: strings.TrimRight(cfg.LangGraphBaseURL, "/"),
		apiKey:  cfg.LangGraphAPIKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *langGraphClient) CreateThread(ctx context.Context) (string, error) {
	resp, err := c.postJSON(ctx, "/chat/sessions", map[string]any{})
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	threadID := firstString(resp, "thread_id", "id", "session_id")
	if threadID == "" {
		return "", fmt.Errorf("agent API did not return a thread ID")
	}
	return threadID, nil
}

func (c *langGraphClient) SendMessage(ctx context.Context, threadID, text string, fileIDs []string) (*Reply, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ThreadID:  logger.Ptr(threadID),
		Component: "agent.langgraph",
	})
	if len(fileIDs) > 0 {
		slog.DebugContext(ctx, "message has file attachments", "count", len(fileIDs))
	}

	resp, err := c.postJSON(ctx, "/chat/messages", map[string]any{
		"thread_id": threadID,
		"message":   text,
		"file_ids":  fileIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	return &Reply{Text: extractReply(resp), Raw: resp}, nil
}

func (c *langGraphClient) UploadDocument(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents/upload", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("upload document: %w", err)
	}

	fileID := firstString(resp, "file_id", "id")
	if fileID == "" {
		return "", fmt.Errorf("agent API did not return a file ID")
	}
	return fileID, nil
}

func (c *langGraphClient) postJSON(ctx context.Context, path string, payload map[string]any) (map[string]any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	return c.do(req)
}

func (c *langGraphClient) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func (c *langGraphClient) do(req *http.Request) (map[string]any, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("agent API returned %d: %s", resp.StatusCode, logger.Truncate(string(body), 200))
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode agent API response: %w", err)
	}
	return decoded, nil
}

// extractReply pulls the assistant's reply out of a response payload. The
// LangGraph state shape puts it in the last ai-typed entry of messages; older
// deployments used flat reply/message/content fields. Anything else is
// stringified so the caller still gets something to persist.
func extractReply(resp map[string]any) string {
	if msgs, ok := resp["messages"].([]any); ok && len(msgs) > 0 {
		for i := len(msgs) - 1; i >= 0; i-- {
			msg, ok := msgs[i].(map[string]any)
			if !ok {
				continue
			}
			if msg["type"] == "ai" {
				if content, ok := msg["content"].(string); ok && content != "" {
					return content
				}
			}
		}
		if last, ok := msgs[len(msgs)-1].(map[string]any); ok {
			if content, ok := last["content"].(string); ok {
				return content
			}
		}
	}

	for _, key := range []string{"reply", "message", "content"} {
		if value, ok := resp[key].(string); ok {
			return value
		}
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf("%v", resp)
	}
	return string(data)
}

func firstString(resp map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := resp[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
