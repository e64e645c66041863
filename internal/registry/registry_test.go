package registry

import (
	"context"
	"testing"

	"github.com/Fuabioo/mcpd/internal/errors"
	"github.com/Fuabioo/mcpd/internal/protocol"
)

func noopTool(ctx context.Context, args map[string]any) ([]protocol.Content, error) {
	return []protocol.Content{protocol.NewTextContent("ok")}, nil
}

func noopPrompt(ctx context.Context, args map[string]string) (*protocol.GetPromptResult, error) {
	return &protocol.GetPromptResult{}, nil
}

func TestRegisterTool(t *testing.T) {
	r := New()

	err := r.RegisterTool(NewTool("echo", WithDescription("Echo back")), noopTool)
	if err != nil {
		t.Fatalf("RegisterTool() error = %v", err)
	}

	desc, handler, err := r.ResolveTool("echo")
	if err != nil {
		t.Fatalf("ResolveTool() error = %v", err)
	}
	if desc.Name != "echo" {
		t.Errorf("Name = %q, want %q", desc.Name, "echo")
	}
	if handler == nil {
		t.Error("expected non-nil handler")
	}
}

func TestRegisterTool_Duplicate(t *testing.T) {
	r := New()

	if err := r.RegisterTool(NewTool("echo"), noopTool); err != nil {
		t.Fatalf("first RegisterTool() error = %v", err)
	}

	err := r.RegisterTool(NewTool("echo"), noopTool)
	if err == nil {
		t.Fatal("expected error for duplicate name, got nil")
	}
	if !errors.Is(err, errors.CodeDuplicateName) {
		t.Errorf("error code = %q, want %q", errors.Code(err), errors.CodeDuplicateName)
	}
}

func TestRegisterTool_InvalidName(t *testing.T) {
	tests := []struct {
		name     string
		toolName string
	}{
		{name: "empty", toolName: ""},
		{name: "whitespace", toolName: "bad name"},
		{name: "slash", toolName: "tools/echo"},
		{name: "too long", toolName: string(make([]byte, 65))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			err := r.RegisterTool(NewTool(tt.toolName), noopTool)
			if err == nil {
				t.Fatalf("expected error for name %q, got nil", tt.toolName)
			}
			if !errors.Is(err, errors.CodeInvalidName) {
				t.Errorf("error code = %q, want %q", errors.Code(err), errors.CodeInvalidName)
			}
		})
	}
}

func TestRegisterTool_NilHandler(t *testing.T) {
	r := New()
	if err := r.RegisterTool(NewTool("echo"), nil); err == nil {
		t.Fatal("expected error for nil handler, got nil")
	}
}

func TestRegisterTool_Frozen(t *testing.T) {
	r := New()
	r.Freeze()

	if err := r.RegisterTool(NewTool("echo"), noopTool); err == nil {
		t.Fatal("expected error registering into frozen registry, got nil")
	}
	if err := r.RegisterPrompt(NewPrompt("greeting"), noopPrompt); err == nil {
		t.Fatal("expected error registering prompt into frozen registry, got nil")
	}
}

func TestTools_RegistrationOrder(t *testing.T) {
	r := New()

	names := []string{"zulu", "alpha", "mike"}
	for _, name := range names {
		if err := r.RegisterTool(NewTool(name), noopTool); err != nil {
			t.Fatalf("RegisterTool(%q) error = %v", name, err)
		}
	}

	tools := r.Tools()
	if len(tools) != len(names) {
		t.Fatalf("len(Tools()) = %d, want %d", len(tools), len(names))
	}
	for i, name := range names {
		if tools[i].Name != name {
			t.Errorf("Tools()[%d].Name = %q, want %q", i, tools[i].Name, name)
		}
	}
}

func TestTools_ReturnsIndependentCopy(t *testing.T) {
	r := New()

	if err := r.RegisterTool(NewTool("echo", WithDescription("Echo back")), noopTool); err != nil {
		t.Fatalf("RegisterTool() error = %v", err)
	}

	first := r.Tools()
	first[0].Name = "mutated"
	first[0].Description = "mutated"

	second := r.Tools()
	if second[0].Name != "echo" {
		t.Errorf("after mutation, Name = %q, want %q", second[0].Name, "echo")
	}
	if second[0].Description != "Echo back" {
		t.Errorf("after mutation, Description = %q, want %q", second[0].Description, "Echo back")
	}
}

func TestPrompts_RegistrationOrderAndCopy(t *testing.T) {
	r := New()

	if err := r.RegisterPrompt(NewPrompt("greeting", WithPromptDescription("A greeting prompt")), noopPrompt); err != nil {
		t.Fatalf("RegisterPrompt() error = %v", err)
	}
	if err := r.RegisterPrompt(NewPrompt("farewell"), noopPrompt); err != nil {
		t.Fatalf("RegisterPrompt() error = %v", err)
	}

	prompts := r.Prompts()
	if len(prompts) != 2 {
		t.Fatalf("len(Prompts()) = %d, want 2", len(prompts))
	}
	if prompts[0].Name != "greeting" || prompts[1].Name != "farewell" {
		t.Errorf("order = [%q, %q], want [greeting, farewell]", prompts[0].Name, prompts[1].Name)
	}

	prompts[0].Name = "mutated"
	if r.Prompts()[0].Name != "greeting" {
		t.Error("mutating returned slice affected registry state")
	}
}

func TestResolveTool_NotFound(t *testing.T) {
	r := New()

	_, _, err := r.ResolveTool("nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown tool, got nil")
	}
	if !errors.Is(err, errors.CodeNotFound) {
		t.Errorf("error code = %q, want %q", errors.Code(err), errors.CodeNotFound)
	}
}

func TestResolvePrompt_NotFound(t *testing.T) {
	r := New()

	_, _, err := r.ResolvePrompt("nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown prompt, got nil")
	}
	if !errors.Is(err, errors.CodeNotFound) {
		t.Errorf("error code = %q, want %q", errors.Code(err), errors.CodeNotFound)
	}
}

func TestToolAndPromptNamespacesAreSeparate(t *testing.T) {
	r := New()

	if err := r.RegisterTool(NewTool("greeting"), noopTool); err != nil {
		t.Fatalf("RegisterTool() error = %v", err)
	}
	if err := r.RegisterPrompt(NewPrompt("greeting"), noopPrompt); err != nil {
		t.Errorf("RegisterPrompt() with same name as a tool should succeed, got %v", err)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "echo", wantErr: false},
		{name: "with underscore", input: "count_words", wantErr: false},
		{name: "with hyphen", input: "my-tool", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace", input: "a b", wantErr: true},
		{name: "dot", input: "a.b", wantErr: true},
		{name: "unicode", input: "héllo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
