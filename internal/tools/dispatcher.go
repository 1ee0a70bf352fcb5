// ABOUTME: Dispatcher routing named tool calls to registered handlers
// ABOUTME: Converts handler errors into error content at the dispatch boundary

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ErrUnknownTool indicates the requested tool name is not registered.
// It signals a caller/integration bug and is never retried.
var ErrUnknownTool = errors.New("unknown tool")

// Dispatcher resolves tool names against an injected registry and invokes
// handlers. A handler error terminates here as an error Result; it never
// crashes the serving loop.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher over the given registry.
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		registry: registry,
		logger:   logger,
	}
}

// List returns the registered tool definitions.
func (d *Dispatcher) List() []Definition {
	return d.registry.List()
}

// Dispatch looks up name and invokes its handler with args. Returns
// ErrUnknownTool for an unregistered name; the handler is never partially
// executed in that case. Handler errors come back as an error Result, not
// as a Go error.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args json.RawMessage) (Result, error) {
	tool := d.registry.Get(name)
	if tool == nil {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage("{}")
	}

	requestID := uuid.New().String()
	d.logger.Debug("dispatching tool call",
		"tool_name", name,
		"request_id", requestID,
	)

	result, err := tool.Handler(ctx, args)
	if err != nil {
		d.logger.Warn("tool handler error",
			"tool_name", name,
			"request_id", requestID,
			"error", err,
		)
		return ErrorResult(fmt.Sprintf("Error executing %s: %v", name, err)), nil
	}

	d.logger.Debug("tool call complete",
		"tool_name", name,
		"request_id", requestID,
		"is_error", result.IsError,
	)
	return result, nil
}
