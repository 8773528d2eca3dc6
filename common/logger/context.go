package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment, so business context (customer_id,
// conversation_id, thread/run identifiers) is included in every log statement
// without threading it through call sites by hand.
type LogFields struct {
	CustomerID     *int64  // Local customer record ID
	ConversationID *int64  // Local conversation record ID
	ThreadID       *string // Remote agent thread identifier
	RunID          *string // Remote agent run identifier
	ToolName       *string // Tool/function name being dispatched
	Component      string  // Component name (e.g. "agent.openai", "tools.registry")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.CustomerID != nil {
		result.CustomerID = next.CustomerID
	}
	if next.ConversationID != nil {
		result.ConversationID = next.ConversationID
	}
	if next.ThreadID != nil {
		result.ThreadID = next.ThreadID
	}
	if next.RunID != nil {
		result.RunID = next.RunID
	}
	if next.ToolName != nil {
		result.ToolName = next.ToolName
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{ThreadID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if truncated.
// Useful for logging potentially long strings like tool outputs or error messages.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
