package registry

import (
	"github.com/Fuabioo/mcpd/internal/errors"
)

// ToolDescriptor describes a tool capability: its unique name, a
// human-readable description, and the schema of its arguments.
// Descriptors are immutable once registered.
type ToolDescriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// ToolOption configures a ToolDescriptor during construction.
type ToolOption func(*ToolDescriptor)

// NewTool builds a tool descriptor from functional options.
func NewTool(name string, opts ...ToolOption) ToolDescriptor {
	desc := ToolDescriptor{Name: name}
	for _, opt := range opts {
		opt(&desc)
	}
	return desc
}

// WithDescription sets the tool description.
func WithDescription(description string) ToolOption {
	return func(d *ToolDescriptor) {
		d.Description = description
	}
}

// WithString declares a string-typed argument.
func WithString(name string, opts ...FieldOption) ToolOption {
	return withField(name, TypeString, opts)
}

// WithNumber declares a number-typed argument.
func WithNumber(name string, opts ...FieldOption) ToolOption {
	return withField(name, TypeNumber, opts)
}

// WithInteger declares an integer-typed argument.
func WithInteger(name string, opts ...FieldOption) ToolOption {
	return withField(name, TypeInteger, opts)
}

// WithBoolean declares a boolean-typed argument.
func WithBoolean(name string, opts ...FieldOption) ToolOption {
	return withField(name, TypeBoolean, opts)
}

// WithObject declares an object-typed argument.
func WithObject(name string, opts ...FieldOption) ToolOption {
	return withField(name, TypeObject, opts)
}

func withField(name, fieldType string, opts []FieldOption) ToolOption {
	return func(d *ToolDescriptor) {
		f := Field{Name: name, Type: fieldType}
		for _, opt := range opts {
			opt(&f)
		}
		d.InputSchema.fields = append(d.InputSchema.fields, f)
	}
}

// FieldOption configures a single schema field.
type FieldOption func(*Field)

// Required marks the field as mandatory.
func Required() FieldOption {
	return func(f *Field) {
		f.Required = true
	}
}

// Description sets the field description.
func Description(description string) FieldOption {
	return func(f *Field) {
		f.Description = description
	}
}

// PromptArgument is a named prompt parameter with a required/optional flag.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

// PromptDescriptor describes a prompt capability: its unique name,
// description, and ordered argument list. Immutable once registered.
type PromptDescriptor struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Arguments   []PromptArgument `json:"arguments"`
}

// ValidateArguments checks that every required prompt argument is present.
func (d *PromptDescriptor) ValidateArguments(args map[string]string) error {
	for _, arg := range d.Arguments {
		if !arg.Required {
			continue
		}
		if _, ok := args[arg.Name]; !ok {
			return errors.MissingArgument(arg.Name)
		}
	}
	return nil
}

// PromptOption configures a PromptDescriptor during construction.
type PromptOption func(*PromptDescriptor)

// NewPrompt builds a prompt descriptor from functional options.
func NewPrompt(name string, opts ...PromptOption) PromptDescriptor {
	desc := PromptDescriptor{Name: name}
	for _, opt := range opts {
		opt(&desc)
	}
	return desc
}

// WithPromptDescription sets the prompt description.
func WithPromptDescription(description string) PromptOption {
	return func(d *PromptDescriptor) {
		d.Description = description
	}
}

// WithArgument declares a prompt argument.
func WithArgument(name string, opts ...ArgumentOption) PromptOption {
	return func(d *PromptDescriptor) {
		arg := PromptArgument{Name: name}
		for _, opt := range opts {
			opt(&arg)
		}
		d.Arguments = append(d.Arguments, arg)
	}
}

// ArgumentOption configures a single prompt argument.
type ArgumentOption func(*PromptArgument)

// ArgRequired marks the prompt argument as mandatory.
func ArgRequired() ArgumentOption {
	return func(a *PromptArgument) {
		a.Required = true
	}
}

// ArgDescription sets the prompt argument description.
func ArgDescription(description string) ArgumentOption {
	return func(a *PromptArgument) {
		a.Description = description
	}
}
