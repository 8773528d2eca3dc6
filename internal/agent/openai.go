package agent

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.opentelemetry.io/otel/trace"

	"jobpromax.app/agent-api/common/logger"
	"jobpromax.app/agent-api/internal/tools"
)

const (
	// maxRunPolls bounds how long a run may stay non-terminal. With a one
	// second interval this is a one minute budget per turn.
	maxRunPolls     = 60
	runPollInterval = time.Second
)

// Terminal and transitional run statuses as reported by the Assistants API.
const (
	runStatusRequiresAction = "requires_action"
	runStatusCompleted      = "completed"
	runStatusFailed         = "failed"
	runStatusCancelled      = "cancelled"
	runStatusExpired        = "expired"
)

// runState is a snapshot of a remote run. LastError and PendingToolCalls are
// nil unless the backend reported them.
type runState struct {
	ID               string
	Status           string
	LastError        *RunError
	PendingToolCalls []ToolCall
}

func (s runState) terminal() bool {
	switch s.Status {
	case runStatusCompleted, runStatusFailed, runStatusCancelled, runStatusExpired:
		return true
	}
	return false
}

type toolOutput struct {
	CallID string
	Output string
}

// assistantAPI is the slice of the Assistants API the driver needs. The run
// loop is written against it so tests can script run-state sequences.
type assistantAPI interface {
	createThread(ctx context.Context) (string, error)
	createMessage(ctx context.Context, threadID, text string, fileIDs []string) error
	createRun(ctx context.Context, threadID string) (runState, error)
	getRun(ctx context.Context, threadID, runID string) (runState, error)
	submitToolOutputs(ctx context.Context, threadID, runID string, outputs []toolOutput) (runState, error)
	lastAssistantText(ctx context.Context, threadID string) (string, error)
	uploadFile(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

type openaiClient struct {
	api          assistantAPI
	registry     *tools.Registry
	maxPolls     int
	pollInterval time.Duration
}

// newOpenAIClient creates a Client backed by the OpenAI Assistants API.
func newOpenAIClient(cfg Config, registry *tools.Registry) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is missing: %w", ErrNotConfigured)
	}
	if cfg.AssistantID == "" {
		return nil, fmt.Errorf("OPENAI_ASSISTANT_ID is missing: %w", ErrNotConfigured)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openaiClient{
		api: &assistantsAPI{
			client:      openai.NewClient(opts...),
			assistantID: cfg.AssistantID,
		},
		registry:     registry,
		maxPolls:     maxRunPolls,
		pollInterval: runPollInterval,
	}, nil
}

func (c *openaiClient) CreateThread(ctx context.Context) (string, error) {
	threadID, err := c.api.createThread(ctx)
	if err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}
	slog.InfoContext(ctx, "created assistant thread",
		"thread_id", threadID, "component", "agent.openai")
	return threadID, nil
}

func (c *openaiClient) SendMessage(ctx context.Context, threadID, text string, fileIDs []string) (*Reply, error) {
	sc := logger.StartSpan(ctx, "agent.openai.send_message", trace.WithSpanKind(trace.SpanKindClient))
	defer sc.End()

	reply, err := c.sendMessage(sc.Context(), threadID, text, fileIDs)
	if err != nil {
		sc.RecordError(err)
	}
	return reply, err
}

func (c *openaiClient) sendMessage(ctx context.Context, threadID, text string, fileIDs []string) (*Reply, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ThreadID:  logger.Ptr(threadID),
		Component: "agent.openai",
	})

	if err := c.api.createMessage(ctx, threadID, text, fileIDs); err != nil {
		return nil, wrapRunRequestErr(fmt.Errorf("post message: %w", err))
	}

	run, err := c.api.createRun(ctx, threadID)
	if err != nil {
		return nil, wrapRunRequestErr(fmt.Errorf("create run: %w", err))
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{RunID: logger.Ptr(run.ID)})

	run, err = c.pollRun(ctx, threadID, run)
	if err != nil {
		return nil, err
	}

	switch run.Status {
	case runStatusCompleted:
		return c.collectReply(ctx, threadID)
	case runStatusFailed:
		runErr := run.LastError
		if runErr == nil {
			runErr = &RunError{Status: runStatusFailed, Message: "Run failed: Sorry, something went wrong."}
		}
		runErr.Hint = runFailureHint
		if len(run.PendingToolCalls) > 0 {
			slog.ErrorContext(ctx, "run failed with unserviced tool calls",
				"pending_tool_calls", len(run.PendingToolCalls))
		}
		slog.ErrorContext(ctx, "run failed",
			"code", runErr.Code, "message", runErr.Message)
		return nil, runErr
	default:
		slog.ErrorContext(ctx, "run ended without completing", "status", run.Status)
		return nil, &RunError{Status: run.Status}
	}
}

// pollRun fetches the run state once per interval until it reaches a terminal
// status, dispatching tool calls whenever the run requires action. It returns
// ErrRunTimedOut when the poll budget runs out first.
func (c *openaiClient) pollRun(ctx context.Context, threadID string, run runState) (runState, error) {
	for polls := 0; polls < c.maxPolls; polls++ {
		if err := c.wait(ctx); err != nil {
			return run, err
		}

		var err error
		run, err = c.api.getRun(ctx, threadID, run.ID)
		if err != nil {
			return run, fmt.Errorf("retrieve run: %w", err)
		}

		slog.DebugContext(ctx, "run status", "status", run.Status, "poll", polls+1)

		// An error object can show up while the run is still moving. Log it
		// as soon as it appears so failures are diagnosable even when the
		// terminal status arrives later.
		if run.LastError != nil && run.Status != runStatusFailed {
			slog.WarnContext(ctx, "run reported an error while still in flight",
				"status", run.Status,
				"code", run.LastError.Code,
				"message", run.LastError.Message)
		}

		if run.Status == runStatusFailed {
			return run, nil
		}

		if run.Status == runStatusRequiresAction && len(run.PendingToolCalls) > 0 {
			run, err = c.serviceToolCalls(ctx, threadID, run)
			if err != nil {
				return run, err
			}
			continue
		}

		if run.terminal() {
			return run, nil
		}
	}

	slog.ErrorContext(ctx, "run did not reach a terminal state within the poll budget",
		"max_polls", c.maxPolls, "last_status", run.Status)
	return run, fmt.Errorf("run %s still %s after %d polls: %w",
		run.ID, run.Status, c.maxPolls, ErrRunTimedOut)
}

// serviceToolCalls dispatches every pending tool call through the registry
// and submits the outputs. Handler failures become error payloads in the
// submitted outputs; they never abort the run.
func (c *openaiClient) serviceToolCalls(ctx context.Context, threadID string, run runState) (runState, error) {
	slog.InfoContext(ctx, "run requires action",
		"tool_calls", len(run.PendingToolCalls))

	outputs := make([]toolOutput, 0, len(run.PendingToolCalls))
	for _, call := range run.PendingToolCalls {
		var output string
		if call.Name == "" {
			slog.ErrorContext(ctx, "tool call without a function name", "tool_call_id", call.ID)
			output = `{"error":"Function name is missing"}`
		} else {
			output = c.registry.Dispatch(ctx, call.Name, call.Arguments)
		}
		slog.InfoContext(ctx, "tool call serviced",
			"tool_call_id", call.ID,
			"function", call.Name,
			"output", logger.Truncate(output, 200))
		outputs = append(outputs, toolOutput{CallID: call.ID, Output: output})
	}

	next, err := c.submit(ctx, threadID, run.ID, outputs)
	if err != nil {
		return run, fmt.Errorf("submit tool outputs: %w", err)
	}
	return next, nil
}

func (c *openaiClient) submit(ctx context.Context, threadID, runID string, outputs []toolOutput) (runState, error) {
	return c.api.submitToolOutputs(ctx, threadID, runID, outputs)
}

func (c *openaiClient) collectReply(ctx context.Context, threadID string) (*Reply, error) {
	text, err := c.api.lastAssistantText(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("list thread messages: %w", err)
	}
	if text == "" {
		slog.WarnContext(ctx, "run completed without assistant text")
		text = NoReplyText
	}
	return &Reply{
		Text: text,
		Raw: map[string]any{
			"messages": []map[string]any{{"type": "ai", "content": text}},
		},
	}, nil
}

func (c *openaiClient) wait(ctx context.Context) error {
	if c.pollInterval <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.pollInterval):
		return nil
	}
}

func (c *openaiClient) UploadDocument(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	fileID, err := c.api.uploadFile(ctx, data, filename, contentType)
	if err != nil {
		return "", fmt.Errorf("upload file %s: %w", filename, err)
	}
	slog.InfoContext(ctx, "uploaded file to assistant storage",
		"filename", filename, "size_bytes", len(data), "file_id", fileID,
		"component", "agent.openai")
	return fileID, nil
}

// wrapRunRequestErr attaches remediation advice to the json_object
// response-format rejection, which otherwise reads as an opaque 400.
func wrapRunRequestErr(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "response_format") && strings.Contains(msg, "json") {
		return fmt.Errorf("%w\nYour assistant is configured with 'json_object' response format, "+
			"which requires the word 'json' in the message or the assistant's instructions. "+
			"Update the assistant's instructions to include: 'Always respond in valid JSON format.'", err)
	}
	return err
}

// assistantsAPI implements assistantAPI against the live Assistants API.
type assistantsAPI struct {
	client      openai.Client
	assistantID string
}

func (a *assistantsAPI) createThread(ctx context.Context) (string, error) {
	thread, err := a.client.Beta.Threads.New(ctx, openai.BetaThreadNewParams{})
	if err != nil {
		return "", err
	}
	return thread.ID, nil
}

func (a *assistantsAPI) createMessage(ctx context.Context, threadID, text string, fileIDs []string) error {
	params := openai.BetaThreadMessageNewParams{
		Role: openai.BetaThreadMessageNewParamsRoleUser,
		Content: openai.BetaThreadMessageNewParamsContentUnion{
			OfString: openai.String(text),
		},
	}
	for _, fileID := range fileIDs {
		params.Attachments = append(params.Attachments, openai.BetaThreadMessageNewParamsAttachment{
			FileID: openai.String(fileID),
			Tools: []openai.BetaThreadMessageNewParamsAttachmentToolUnion{
				{OfFileSearch: &openai.BetaThreadMessageNewParamsAttachmentToolFileSearch{}},
			},
		})
	}

	_, err := a.client.Beta.Threads.Messages.New(ctx, threadID, params)
	return err
}

func (a *assistantsAPI) createRun(ctx context.Context, threadID string) (runState, error) {
	run, err := a.client.Beta.Threads.Runs.New(ctx, threadID, openai.BetaThreadRunNewParams{
		AssistantID: a.assistantID,
	})
	if err != nil {
		return runState{}, err
	}
	return toRunState(run), nil
}

func (a *assistantsAPI) getRun(ctx context.Context, threadID, runID string) (runState, error) {
	run, err := a.client.Beta.Threads.Runs.Get(ctx, threadID, runID)
	if err != nil {
		return runState{}, err
	}
	return toRunState(run), nil
}

func (a *assistantsAPI) submitToolOutputs(ctx context.Context, threadID, runID string, outputs []toolOutput) (runState, error) {
	params := openai.BetaThreadRunSubmitToolOutputsParams{
		ToolOutputs: make([]openai.BetaThreadRunSubmitToolOutputsParamsToolOutput, len(outputs)),
	}
	for i, out := range outputs {
		params.ToolOutputs[i] = openai.BetaThreadRunSubmitToolOutputsParamsToolOutput{
			ToolCallID: openai.String(out.CallID),
			Output:     openai.String(out.Output),
		}
	}

	run, err := a.client.Beta.Threads.Runs.SubmitToolOutputs(ctx, threadID, runID, params)
	if err != nil {
		return runState{}, err
	}
	return toRunState(run), nil
}

// lastAssistantText returns the first text content block of the newest
// assistant message in the thread, or "" when there is none.
func (a *assistantsAPI) lastAssistantText(ctx context.Context, threadID string) (string, error) {
	page, err := a.client.Beta.Threads.Messages.List(ctx, threadID, openai.BetaThreadMessageListParams{
		Order: openai.BetaThreadMessageListParamsOrderAsc,
	})
	if err != nil {
		return "", err
	}
	return newestAssistantText(page.Data), nil
}

// newestAssistantText picks the first text block of the last assistant-authored
// message. A newest assistant message without text yields "" even when earlier
// turns had text; stale replies must never stand in for the current one.
func newestAssistantText(msgs []openai.Message) string {
	var text string
	for _, msg := range msgs {
		if msg.Role != openai.MessageRoleAssistant {
			continue
		}
		text = ""
		for _, block := range msg.Content {
			if block.Type == "text" {
				text = block.Text.Value
				break
			}
		}
	}
	return text
}

func (a *assistantsAPI) uploadFile(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	file, err := a.client.Files.New(ctx, openai.FileNewParams{
		File:    openai.File(bytes.NewReader(data), filename, contentType),
		Purpose: openai.FilePurposeAssistants,
	})
	if err != nil {
		return "", err
	}
	return file.ID, nil
}

func toRunState(run *openai.Run) runState {
	state := runState{
		ID:     run.ID,
		Status: string(run.Status),
	}
	if run.LastError.Code != "" || run.LastError.Message != "" {
		state.LastError = &RunError{
			Status:  string(run.Status),
			Code:    string(run.LastError.Code),
			Message: run.LastError.Message,
		}
	}
	for _, tc := range run.RequiredAction.SubmitToolOutputs.ToolCalls {
		state.PendingToolCalls = append(state.PendingToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return state
}
