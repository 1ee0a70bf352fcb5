// ABOUTME: Tool, handler and typed result types for the dispatch layer
// ABOUTME: A handler maps an argument bag to a sequence of content items

package tools

import (
	"context"
	"encoding/json"
)

// Definition describes a tool to external callers: its name, a
// human-readable description, and a JSON Schema for its arguments. The
// schema is advisory metadata; enforcement happens in each handler.
type Definition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// Content is a single unit of tool response. Type is always "text" here;
// fetch_news embeds a JSON block in the text for widget rendering.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Result is the outcome of a tool invocation: either content items, or an
// error description carried as content with IsError set. Modeling failure
// as a value keeps the dispatch boundary explicit and testable.
type Result struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// TextResult builds a success Result with a single text item.
func TextResult(text string) Result {
	return Result{Content: []Content{{Type: "text", Text: text}}}
}

// ErrorResult builds a failure Result carrying the error description.
func ErrorResult(text string) Result {
	return Result{
		Content: []Content{{Type: "text", Text: text}},
		IsError: true,
	}
}

// Handler executes a tool. It receives the raw argument bag and returns a
// Result. A returned Go error is converted into an error Result at the
// dispatch boundary, never propagated to the serving loop.
type Handler func(ctx context.Context, args json.RawMessage) (Result, error)

// Tool pairs a definition with its handler.
type Tool struct {
	Definition Definition
	Handler    Handler
}
