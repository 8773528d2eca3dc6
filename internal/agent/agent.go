// Package agent drives conversations with the remote job-application
// assistant. A Client owns one remote backend: the OpenAI Assistants API, the
// older LangGraph-style HTTP deployment, or an in-process mock for
// development. Callers treat threads as opaque string IDs.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobpromax.app/agent-api/internal/tools"
)

// Backend constants for agent backend selection.
const (
	BackendOpenAI    = "openai"
	BackendLangGraph = "langgraph"
	BackendMock      = "mock"
)

// ErrNotConfigured indicates the selected backend is missing credentials.
// It is fatal at construction time and is never retried.
var ErrNotConfigured = errors.New("agent backend is not configured")

// ErrRunTimedOut indicates the poll budget was exhausted before the remote
// run reached a terminal state.
var ErrRunTimedOut = errors.New("run polling timed out")

// NoReplyText is returned when a completed run produced no assistant text.
const NoReplyText = "No response from assistant"

// Config holds agent client configuration.
type Config struct {
	Backend string // "openai", "langgraph", or "mock"

	// OpenAI Assistants backend.
	APIKey      string
	BaseURL     string // optional custom endpoint
	AssistantID string

	// LangGraph-style HTTP backend.
	LangGraphBaseURL string
	LangGraphAPIKey  string
}

// Reply is one assistant turn. Raw carries the backend's decoded response
// payload for callers that want to expose it unmodified.
type Reply struct {
	Text string
	Raw  map[string]any
}

// ToolCall is a function invocation requested by a remote run.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON-encoded arguments
}

// RunError is a remote run that ended in a terminal failure state. Code and
// Message carry the remote error when the backend reported one.
type RunError struct {
	Status  string
	Code    string
	Message string
	Hint    string
}

func (e *RunError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "run ended with status: " + e.Status
	}
	if e.Code != "" {
		return fmt.Sprintf("run %s (%s): %s", e.Status, e.Code, msg)
	}
	return fmt.Sprintf("run %s: %s", e.Status, msg)
}

// runFailureHint points at the assistant misconfigurations that most often
// surface as failed runs.
const runFailureHint = "Check your assistant's configuration in OpenAI dashboard. Common issues:\n" +
	"1. Function definitions may be incorrect\n" +
	"2. Assistant instructions may conflict with function calling\n" +
	"3. Response format (json_object) may require 'json' in instructions\n" +
	"4. The assistant may be trying to call functions that don't exist or are misconfigured"

// Client sends admin messages to a remote assistant thread and returns the
// assistant's reply.
type Client interface {
	// CreateThread allocates a new remote conversation thread.
	CreateThread(ctx context.Context) (string, error)

	// SendMessage posts text (optionally with previously uploaded files
	// attached) to the thread and blocks until the assistant replies or the
	// run fails.
	SendMessage(ctx context.Context, threadID, text string, fileIDs []string) (*Reply, error)

	// UploadDocument stores a file with the backend for later attachment.
	// A failed upload returns an error; callers treat it as non-fatal.
	UploadDocument(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

// New creates a Client for the configured backend. The registry services
// function calls issued by remote runs; backends that never call functions
// ignore it.
func New(cfg Config, registry *tools.Registry) (Client, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = BackendOpenAI
	}

	switch backend {
	case BackendOpenAI:
		return newOpenAIClient(cfg, registry)
	case BackendLangGraph:
		return newLangGraphClient(cfg)
	case BackendMock:
		return newMockClient(), nil
	default:
		return nil, fmt.Errorf("unsupported agent backend: %s", backend)
	}
}

// IsMockThread reports whether threadID was synthesized locally instead of
// allocated by a remote backend.
func IsMockThread(threadID string) bool {
	return strings.HasPrefix(threadID, "mock-")
}
