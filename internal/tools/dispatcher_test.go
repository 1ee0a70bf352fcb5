// ABOUTME: Tests for the tool dispatcher's routing and failure containment
// ABOUTME: Covers unknown tools, handler errors, arg normalization

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func newTestDispatcher(t *testing.T, tools ...*Tool) *Dispatcher {
	t.Helper()
	registry := NewRegistry(slog.Default())
	if err := registry.Register(tools...); err != nil {
		t.Fatalf("register: %v", err)
	}
	return NewDispatcher(registry, slog.Default())
}

func echoTool() *Tool {
	return &Tool{
		Definition: Definition{
			Name:        "echo",
			Description: "Echoes its arguments",
			InputSchema: json.RawMessage(`{"type":"object"}`),
		},
		Handler: func(_ context.Context, args json.RawMessage) (Result, error) {
			return TextResult(string(args)), nil
		},
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	d := newTestDispatcher(t, echoTool())

	_, err := d.Dispatch(context.Background(), "missing", nil)
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
}

func TestDispatchInvokesHandler(t *testing.T) {
	d := newTestDispatcher(t, echoTool())

	result, err := d.Dispatch(context.Background(), "echo", json.RawMessage(`{"a":1}`))
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if result.IsError {
		t.Fatal("unexpected error result")
	}
	if len(result.Content) != 1 || result.Content[0].Text != `{"a":1}` {
		t.Fatalf("unexpected content: %+v", result.Content)
	}
}

func TestDispatchNormalizesEmptyArgs(t *testing.T) {
	d := newTestDispatcher(t, echoTool())

	for _, args := range []json.RawMessage{nil, json.RawMessage("null")} {
		result, err := d.Dispatch(context.Background(), "echo", args)
		if err != nil {
			t.Fatalf("dispatch: %v", err)
		}
		if result.Content[0].Text != "{}" {
			t.Errorf("expected normalized args {}, got %q", result.Content[0].Text)
		}
	}
}

func TestDispatchContainsHandlerError(t *testing.T) {
	failing := &Tool{
		Definition: Definition{Name: "boom", Description: "Always fails"},
		Handler: func(context.Context, json.RawMessage) (Result, error) {
			return Result{}, errors.New("database exploded")
		},
	}
	d := newTestDispatcher(t, failing)

	result, err := d.Dispatch(context.Background(), "boom", nil)
	if err != nil {
		t.Fatalf("handler errors must not propagate, got %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected exactly one content item, got %d", len(result.Content))
	}
	if want := "Error executing boom: database exploded"; result.Content[0].Text != want {
		t.Errorf("unexpected error text: %q", result.Content[0].Text)
	}
}

func TestRegistryRejectsCollisions(t *testing.T) {
	registry := NewRegistry(slog.Default())
	if err := registry.Register(echoTool()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := registry.Register(echoTool()); !errors.Is(err, ErrToolCollision) {
		t.Fatalf("expected ErrToolCollision, got %v", err)
	}
}

func TestRegistryListSortedByName(t *testing.T) {
	registry := NewRegistry(slog.Default())
	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		err := registry.Register(&Tool{
			Definition: Definition{Name: name},
			Handler: func(context.Context, json.RawMessage) (Result, error) {
				return Result{}, nil
			},
		})
		if err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	defs := registry.List()
	if len(defs) != 3 {
		t.Fatalf("expected 3 definitions, got %d", len(defs))
	}
	for i, want := range []string{"alpha", "mid", "zeta"} {
		if defs[i].Name != want {
			t.Errorf("position %d: expected %s, got %s", i, want, defs[i].Name)
		}
	}
}
