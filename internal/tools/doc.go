// Package tools provides the tool registry and dispatcher.
//
// A Tool is a named, schema-described operation exposed to the external
// chat client. The Registry is built once during process initialization
// and is effectively immutable afterwards; the Dispatcher takes it by
// reference, keeping dispatch testable with an injected registry.
//
// Failure containment lives at the dispatch boundary: a Go error returned
// by a handler is converted into a Result with IsError set, carrying the
// error description as a text content item. The only Go error Dispatch
// itself returns is ErrUnknownTool.
package tools
