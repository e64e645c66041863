// Package registry holds the set of capabilities a server exposes: tools and
// prompts, each bound to a handler. The registry is built once at startup and
// frozen before serving begins; after that it is read-only and safe for
// concurrent use without locking.
package registry

import (
	"context"
	"fmt"

	"github.com/Fuabioo/mcpd/internal/errors"
	"github.com/Fuabioo/mcpd/internal/protocol"
)

// ToolHandler executes a tool call with validated arguments and returns the
// resulting content blocks or a domain error.
type ToolHandler func(ctx context.Context, args map[string]any) ([]protocol.Content, error)

// PromptHandler renders a prompt with validated arguments.
type PromptHandler func(ctx context.Context, args map[string]string) (*protocol.GetPromptResult, error)

type toolEntry struct {
	desc    ToolDescriptor
	handler ToolHandler
}

type promptEntry struct {
	desc    PromptDescriptor
	handler PromptHandler
}

// Registry maps capability names to (descriptor, handler) pairs.
type Registry struct {
	tools       map[string]toolEntry
	toolOrder   []string
	prompts     map[string]promptEntry
	promptOrder []string
	frozen      bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		tools:   make(map[string]toolEntry),
		prompts: make(map[string]promptEntry),
	}
}

// RegisterTool adds a tool capability. It fails if the registry is frozen,
// the name is invalid, or the name is already taken by a tool.
func (r *Registry) RegisterTool(desc ToolDescriptor, handler ToolHandler) error {
	if r.frozen {
		return fmt.Errorf("cannot register tool %q: registry is frozen", desc.Name)
	}
	if err := ValidateName(desc.Name); err != nil {
		return err
	}
	if handler == nil {
		return fmt.Errorf("cannot register tool %q: handler is nil", desc.Name)
	}
	if _, exists := r.tools[desc.Name]; exists {
		return errors.DuplicateName(desc.Name)
	}

	r.tools[desc.Name] = toolEntry{desc: desc, handler: handler}
	r.toolOrder = append(r.toolOrder, desc.Name)
	return nil
}

// RegisterPrompt adds a prompt capability with the same constraints as
// RegisterTool.
func (r *Registry) RegisterPrompt(desc PromptDescriptor, handler PromptHandler) error {
	if r.frozen {
		return fmt.Errorf("cannot register prompt %q: registry is frozen", desc.Name)
	}
	if err := ValidateName(desc.Name); err != nil {
		return err
	}
	if handler == nil {
		return fmt.Errorf("cannot register prompt %q: handler is nil", desc.Name)
	}
	if _, exists := r.prompts[desc.Name]; exists {
		return errors.DuplicateName(desc.Name)
	}

	r.prompts[desc.Name] = promptEntry{desc: desc, handler: handler}
	r.promptOrder = append(r.promptOrder, desc.Name)
	return nil
}

// Freeze seals the registry. All registrations must happen before Freeze;
// afterwards the registry is immutable and reads require no synchronization.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Tools returns the tool descriptors in registration order. The returned
// slice is a new copy; mutating it does not affect the registry.
func (r *Registry) Tools() []ToolDescriptor {
	out := make([]ToolDescriptor, 0, len(r.toolOrder))
	for _, name := range r.toolOrder {
		out = append(out, r.tools[name].desc)
	}
	return out
}

// Prompts returns the prompt descriptors in registration order, as a copy.
func (r *Registry) Prompts() []PromptDescriptor {
	out := make([]PromptDescriptor, 0, len(r.promptOrder))
	for _, name := range r.promptOrder {
		out = append(out, r.prompts[name].desc)
	}
	return out
}

// ResolveTool returns the descriptor and handler bound to name.
func (r *Registry) ResolveTool(name string) (ToolDescriptor, ToolHandler, error) {
	entry, ok := r.tools[name]
	if !ok {
		return ToolDescriptor{}, nil, errors.ToolNotFound(name)
	}
	return entry.desc, entry.handler, nil
}

// ResolvePrompt returns the descriptor and handler bound to name.
func (r *Registry) ResolvePrompt(name string) (PromptDescriptor, PromptHandler, error) {
	entry, ok := r.prompts[name]
	if !ok {
		return PromptDescriptor{}, nil, errors.PromptNotFound(name)
	}
	return entry.desc, entry.handler, nil
}
