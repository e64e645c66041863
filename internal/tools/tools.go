// Package tools provides the built-in tool and prompt set.
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Fuabioo/mcpd/internal/protocol"
	"github.com/Fuabioo/mcpd/internal/registry"
)

// Register installs the built-in tools and prompts into the registry.
func Register(reg *registry.Registry) error {
	if err := registerTools(reg); err != nil {
		return err
	}
	return registerPrompts(reg)
}

func registerTools(reg *registry.Registry) error {
	if err := reg.RegisterTool(registry.NewTool("echo",
		registry.WithDescription("Echo back the provided message"),
		registry.WithString("message",
			registry.Required(),
			registry.Description("The message to echo back")),
	), echoHandler); err != nil {
		return err
	}

	if err := reg.RegisterTool(registry.NewTool("uppercase",
		registry.WithDescription("Convert text to uppercase"),
		registry.WithString("text",
			registry.Required(),
			registry.Description("The text to convert")),
	), uppercaseHandler); err != nil {
		return err
	}

	return reg.RegisterTool(registry.NewTool("count_words",
		registry.WithDescription("Count the number of words in a text"),
		registry.WithString("text",
			registry.Required(),
			registry.Description("The text to count words in")),
	), countWordsHandler)
}

func registerPrompts(reg *registry.Registry) error {
	return reg.RegisterPrompt(registry.NewPrompt("greeting",
		registry.WithPromptDescription("Generate a greeting for a person"),
		registry.WithArgument("name",
			registry.ArgRequired(),
			registry.ArgDescription("The name of the person to greet")),
	), greetingHandler)
}

func echoHandler(ctx context.Context, args map[string]any) ([]protocol.Content, error) {
	message, _ := args["message"].(string)
	return []protocol.Content{protocol.NewTextContent("Echo: " + message)}, nil
}

func uppercaseHandler(ctx context.Context, args map[string]any) ([]protocol.Content, error) {
	text, _ := args["text"].(string)
	return []protocol.Content{protocol.NewTextContent(strings.ToUpper(text))}, nil
}

func countWordsHandler(ctx context.Context, args map[string]any) ([]protocol.Content, error) {
	text, _ := args["text"].(string)
	count := len(strings.Fields(text))
	return []protocol.Content{protocol.NewTextContent(fmt.Sprintf("Word count: %d", count))}, nil
}

func greetingHandler(ctx context.Context, args map[string]string) (*protocol.GetPromptResult, error) {
	return &protocol.GetPromptResult{
		Description: "A greeting prompt",
		Messages: []protocol.PromptMessage{
			{
				Role:    protocol.RoleUser,
				Content: protocol.NewTextContent(fmt.Sprintf("Hello, %s! How are you today?", args["name"])),
			},
		},
	}, nil
}
