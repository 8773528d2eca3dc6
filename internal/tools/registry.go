// Package tools implements the registry that services function calls issued
// by the remote job-apply agent. Every function exposed in the assistant's
// tool schema must have a handler registered here under the exact same name.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/invopop/jsonschema"

	"jobpromax.app/agent-api/common/logger"
)

// Handler executes one tool call with normalized arguments. The returned
// value is coerced to JSON text before being handed back to the remote run.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Definition describes a registered tool for diagnostics and for checking the
// assistant's configured tool schema against the local registry.
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  any    `json:"parameters"`
}

// Registry maps function names to handlers. Lookup is by exact string match;
// there is no fuzzy matching and no overloading.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	defs     map[string]Definition
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		defs:     make(map[string]Definition),
	}
}

// Register binds a handler to def.Name, replacing any previous registration.
func (r *Registry) Register(def Definition, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[def.Name] = h
	r.defs[def.Name] = def
}

// Names returns the sorted set of registered function names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns the registered tool definitions, sorted by name.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]Definition, 0, len(r.defs))
	for _, def := range r.defs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Dispatch resolves name to a handler and invokes it with the decoded
// arguments. It never returns an error: a lookup miss, an argument decode
// failure, or a handler failure all degrade to a JSON error payload that is
// submitted as the tool call's output so the remote run can continue.
//
// rawArgs may be a JSON-encoded string, an already-decoded object, or nil;
// anything unparseable normalizes to an empty argument object.
func (r *Registry) Dispatch(ctx context.Context, name string, rawArgs any) string {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ToolName:  logger.Ptr(name),
		Component: "tools.registry",
	})

	args := DecodeArguments(ctx, rawArgs)

	r.mu.RLock()
	handler, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		names := r.Names()
		slog.ErrorContext(ctx, "no handler registered for function", "available", names)
		return mustMarshal(map[string]any{
			"error":              fmt.Sprintf("no handler registered for function %q", name),
			"function":           name,
			"available_handlers": names,
		})
	}

	result, err := handler(ctx, args)
	if err != nil {
		slog.ErrorContext(ctx, "tool handler failed", "error", err)
		return mustMarshal(map[string]any{
			"error":    fmt.Sprintf("error executing handler for %q: %s", name, err),
			"function": name,
		})
	}

	return coerceOutput(result)
}

// DecodeArguments normalizes the raw arguments payload into a map. The remote
// run supplies arguments as JSON text; the older LangGraph deployment sent
// decoded objects. Absent or unparseable input becomes an empty object.
func DecodeArguments(ctx context.Context, raw any) map[string]any {
	switch v := raw.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		return v
	case string:
		if v == "" {
			return map[string]any{}
		}
		var args map[string]any
		if err := json.Unmarshal([]byte(v), &args); err != nil || args == nil {
			slog.WarnContext(ctx, "failed to parse tool arguments, defaulting to empty object",
				"raw", logger.Truncate(v, 200))
			return map[string]any{}
		}
		return args
	case []byte:
		return DecodeArguments(ctx, string(v))
	default:
		slog.WarnContext(ctx, "unexpected tool argument type, defaulting to empty object",
			"type", fmt.Sprintf("%T", raw))
		return map[string]any{}
	}
}

// coerceOutput turns a handler result into the JSON text expected by the
// tool-output submission step. Valid JSON strings pass through; other strings
// are wrapped; everything else is marshaled directly.
func coerceOutput(result any) string {
	if s, ok := result.(string); ok {
		if json.Valid([]byte(s)) {
			return s
		}
		return mustMarshal(map[string]any{"result": s})
	}
	return mustMarshal(result)
}

// GenerateSchema builds a JSON schema for a tool's parameter struct.
func GenerateSchema(v any) any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(v)
}

func mustMarshal(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Only reachable with unmarshalable handler output (channels, funcs).
		return fmt.Sprintf(`{"error":"failed to encode tool output: %s"}`, err)
	}
	return string(data)
}
