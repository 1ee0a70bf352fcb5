// ABOUTME: Registry of named tools built once at startup and frozen thereafter
// ABOUTME: New tools are added by registration, not by touching dispatch logic

package tools

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// ErrToolCollision indicates a tool name is already registered.
var ErrToolCollision = errors.New("tool name collision")

// Registry maps tool names to tools. It is populated during process
// initialization and read-only afterwards; the dispatcher takes it by
// reference so tests can inject their own.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]*Tool
	logger *slog.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		tools:  make(map[string]*Tool),
		logger: logger,
	}
}

// Register adds tools to the registry. Returns ErrToolCollision if any
// name is already taken; nothing is registered in that case.
func (r *Registry) Register(tools ...*Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range tools {
		if _, exists := r.tools[t.Definition.Name]; exists {
			return fmt.Errorf("%w: %q", ErrToolCollision, t.Definition.Name)
		}
	}
	for _, t := range tools {
		r.tools[t.Definition.Name] = t
	}

	r.logger.Info("tools registered",
		"count", len(tools),
		"total", len(r.tools),
	)
	return nil
}

// Get returns the tool with the given name, or nil.
func (r *Registry) Get(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// List returns every registered definition, sorted by name.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, t.Definition)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}
