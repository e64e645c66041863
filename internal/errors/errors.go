package errors

import (
	"errors"
	"fmt"
)

// Error code constants covering the protocol error taxonomy
const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidArguments = "INVALID_ARGUMENTS"
	CodeHandlerError     = "HANDLER_ERROR"
	CodeDuplicateName    = "DUPLICATE_NAME"
	CodeInvalidName      = "INVALID_NAME"
	CodeParseError       = "PARSE_ERROR"
	CodeFraming          = "FRAMING_ERROR"
	CodeStartup          = "STARTUP_FAILED"
)

// Error represents an mcpd error with a code and message.
// It implements the error interface and supports error wrapping.
type Error struct {
	wrapped error
	Code    string
	Message string
}

// Error returns the error message, implementing the error interface.
func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, supporting errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// New creates a new mcpd error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new mcpd error that wraps an underlying error.
func Wrap(code string, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		wrapped: err,
	}
}

// Code extracts the error code from an error.
// Returns an empty string if the error is not an mcpd error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var mcpdErr *Error
	if errors.As(err, &mcpdErr) {
		return mcpdErr.Code
	}
	return ""
}

// Is checks if an error has a specific error code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// Convenience constructors for each error code

// ToolNotFound creates a NOT_FOUND error for an unknown tool.
func ToolNotFound(name string) *Error {
	return New(CodeNotFound, fmt.Sprintf("tool %q is not registered", name))
}

// PromptNotFound creates a NOT_FOUND error for an unknown prompt.
func PromptNotFound(name string) *Error {
	return New(CodeNotFound, fmt.Sprintf("prompt %q is not registered", name))
}

// MethodNotFound creates a NOT_FOUND error for an unknown protocol method.
func MethodNotFound(method string) *Error {
	return New(CodeNotFound, fmt.Sprintf("method %q is not supported", method))
}

// MissingArgument creates an INVALID_ARGUMENTS error for an absent required field.
func MissingArgument(field string) *Error {
	return New(CodeInvalidArguments, fmt.Sprintf("required argument %q is missing", field))
}

// InvalidArgument creates an INVALID_ARGUMENTS error for a type mismatch.
func InvalidArgument(field, wantType string) *Error {
	return New(CodeInvalidArguments, fmt.Sprintf("argument %q must be of type %s", field, wantType))
}

// HandlerFailed creates a HANDLER_ERROR wrapping the handler's own error.
func HandlerFailed(name string, err error) *Error {
	return Wrap(CodeHandlerError, fmt.Sprintf("handler for %q failed", name), err)
}

// DuplicateName creates a DUPLICATE_NAME error.
func DuplicateName(name string) *Error {
	return New(CodeDuplicateName, fmt.Sprintf("capability name %q is already registered", name))
}

// InvalidName creates an INVALID_NAME error.
func InvalidName(name, reason string) *Error {
	return New(CodeInvalidName, fmt.Sprintf("capability name %q is invalid: %s", name, reason))
}

// ParseFailed creates a PARSE_ERROR wrapping the underlying decode error.
func ParseFailed(err error) *Error {
	return Wrap(CodeParseError, "failed to parse message payload", err)
}

// FramingFailed creates a FRAMING_ERROR wrapping the underlying stream error.
func FramingFailed(err error) *Error {
	return Wrap(CodeFraming, "message framing corrupted", err)
}

// StartupFailed creates a STARTUP_FAILED error wrapping the initialization failure.
func StartupFailed(err error) *Error {
	return Wrap(CodeStartup, "server failed to start", err)
}
