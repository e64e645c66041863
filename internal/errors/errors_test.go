package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "simple error",
			err:      New(CodeNotFound, "tool not found"),
			expected: "NOT_FOUND: tool not found",
		},
		{
			name:     "wrapped error",
			err:      Wrap(CodeHandlerError, "handler failed", fmt.Errorf("division by zero")),
			expected: "HANDLER_ERROR: handler failed: division by zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	t.Run("no wrapped error", func(t *testing.T) {
		err := New(CodeNotFound, "not found")
		if err.Unwrap() != nil {
			t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
		}
	})

	t.Run("with wrapped error", func(t *testing.T) {
		underlying := fmt.Errorf("io error")
		err := Wrap(CodeFraming, "framing corrupted", underlying)

		unwrapped := err.Unwrap()
		if unwrapped == nil {
			t.Fatal("Unwrap() = nil, want error")
		}
		if unwrapped.Error() != "io error" {
			t.Errorf("Unwrap() = %q, want %q", unwrapped.Error(), "io error")
		}
	})

	t.Run("stdlib errors.Is compatibility", func(t *testing.T) {
		underlying := fmt.Errorf("io error")
		err := Wrap(CodeFraming, "framing corrupted", underlying)

		if !errors.Is(err, underlying) {
			t.Error("errors.Is() = false, want true for wrapped error")
		}
	})

	t.Run("stdlib errors.As compatibility", func(t *testing.T) {
		err := New(CodeNotFound, "not found")

		var mcpdErr *Error
		if !errors.As(err, &mcpdErr) {
			t.Error("errors.As() = false, want true for mcpd error")
		}
		if mcpdErr.Code != CodeNotFound {
			t.Errorf("errors.As() code = %q, want %q", mcpdErr.Code, CodeNotFound)
		}
	})
}

func TestNew(t *testing.T) {
	err := New("TEST_CODE", "test message")

	if err.Code != "TEST_CODE" {
		t.Errorf("Code = %q, want %q", err.Code, "TEST_CODE")
	}
	if err.Message != "test message" {
		t.Errorf("Message = %q, want %q", err.Message, "test message")
	}
	if err.wrapped != nil {
		t.Errorf("wrapped = %v, want nil", err.wrapped)
	}
}

func TestWrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	err := Wrap("TEST_CODE", "test message", underlying)

	if err.Code != "TEST_CODE" {
		t.Errorf("Code = %q, want %q", err.Code, "TEST_CODE")
	}
	if err.Message != "test message" {
		t.Errorf("Message = %q, want %q", err.Message, "test message")
	}
	if err.wrapped != underlying {
		t.Errorf("wrapped = %v, want %v", err.wrapped, underlying)
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "mcpd error",
			err:      New(CodeNotFound, "not found"),
			expected: CodeNotFound,
		},
		{
			name:     "wrapped mcpd error",
			err:      Wrap(CodeHandlerError, "handler failed", fmt.Errorf("io error")),
			expected: CodeHandlerError,
		},
		{
			name:     "standard error",
			err:      fmt.Errorf("standard error"),
			expected: "",
		},
		{
			name:     "wrapped standard error",
			err:      fmt.Errorf("wrapped: %w", New(CodeParseError, "bad payload")),
			expected: CodeParseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Code(tt.err)
			if got != tt.expected {
				t.Errorf("Code() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			code:     CodeNotFound,
			expected: false,
		},
		{
			name:     "matching code",
			err:      New(CodeNotFound, "not found"),
			code:     CodeNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(CodeNotFound, "not found"),
			code:     CodeInvalidArguments,
			expected: false,
		},
		{
			name:     "wrapped mcpd error",
			err:      Wrap(CodeFraming, "framing corrupted", fmt.Errorf("io error")),
			code:     CodeFraming,
			expected: true,
		},
		{
			name:     "standard error",
			err:      fmt.Errorf("standard error"),
			code:     CodeNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Is(tt.err, tt.code)
			if got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// Test all convenience constructors

func TestToolNotFound(t *testing.T) {
	err := ToolNotFound("echo")

	if err.Code != CodeNotFound {
		t.Errorf("Code = %q, want %q", err.Code, CodeNotFound)
	}
	if !strings.Contains(err.Message, "echo") {
		t.Errorf("Message = %q, should contain %q", err.Message, "echo")
	}
	if !strings.Contains(err.Message, "not registered") {
		t.Errorf("Message = %q, should mention not registered", err.Message)
	}
}

func TestPromptNotFound(t *testing.T) {
	err := PromptNotFound("greeting")

	if err.Code != CodeNotFound {
		t.Errorf("Code = %q, want %q", err.Code, CodeNotFound)
	}
	if !strings.Contains(err.Message, "greeting") {
		t.Errorf("Message = %q, should contain %q", err.Message, "greeting")
	}
}

func TestMethodNotFound(t *testing.T) {
	err := MethodNotFound("resources/list")

	if err.Code != CodeNotFound {
		t.Errorf("Code = %q, want %q", err.Code, CodeNotFound)
	}
	if !strings.Contains(err.Message, "resources/list") {
		t.Errorf("Message = %q, should contain %q", err.Message, "resources/list")
	}
	if !strings.Contains(err.Message, "not supported") {
		t.Errorf("Message = %q, should mention not supported", err.Message)
	}
}

func TestMissingArgument(t *testing.T) {
	err := MissingArgument("message")

	if err.Code != CodeInvalidArguments {
		t.Errorf("Code = %q, want %q", err.Code, CodeInvalidArguments)
	}
	if !strings.Contains(err.Message, "message") {
		t.Errorf("Message = %q, should contain %q", err.Message, "message")
	}
	if !strings.Contains(err.Message, "missing") {
		t.Errorf("Message = %q, should mention missing", err.Message)
	}
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("limit", "number")

	if err.Code != CodeInvalidArguments {
		t.Errorf("Code = %q, want %q", err.Code, CodeInvalidArguments)
	}
	if !strings.Contains(err.Message, "limit") {
		t.Errorf("Message = %q, should contain %q", err.Message, "limit")
	}
	if !strings.Contains(err.Message, "number") {
		t.Errorf("Message = %q, should contain expected type", err.Message)
	}
}

func TestHandlerFailed(t *testing.T) {
	underlying := fmt.Errorf("upstream timeout")
	err := HandlerFailed("echo", underlying)

	if err.Code != CodeHandlerError {
		t.Errorf("Code = %q, want %q", err.Code, CodeHandlerError)
	}
	if !strings.Contains(err.Message, "echo") {
		t.Errorf("Message = %q, should contain %q", err.Message, "echo")
	}
	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
	if !strings.Contains(err.Error(), "upstream timeout") {
		t.Errorf("Error() = %q, should include wrapped error", err.Error())
	}
}

func TestDuplicateName(t *testing.T) {
	err := DuplicateName("echo")

	if err.Code != CodeDuplicateName {
		t.Errorf("Code = %q, want %q", err.Code, CodeDuplicateName)
	}
	if !strings.Contains(err.Message, "echo") {
		t.Errorf("Message = %q, should contain %q", err.Message, "echo")
	}
	if !strings.Contains(err.Message, "already registered") {
		t.Errorf("Message = %q, should mention already registered", err.Message)
	}
}

func TestInvalidName(t *testing.T) {
	err := InvalidName("bad name", "contains whitespace")

	if err.Code != CodeInvalidName {
		t.Errorf("Code = %q, want %q", err.Code, CodeInvalidName)
	}
	if !strings.Contains(err.Message, "bad name") {
		t.Errorf("Message = %q, should contain %q", err.Message, "bad name")
	}
	if !strings.Contains(err.Message, "contains whitespace") {
		t.Errorf("Message = %q, should contain reason", err.Message)
	}
}

func TestParseFailed(t *testing.T) {
	underlying := fmt.Errorf("unexpected end of JSON input")
	err := ParseFailed(underlying)

	if err.Code != CodeParseError {
		t.Errorf("Code = %q, want %q", err.Code, CodeParseError)
	}
	if !strings.Contains(err.Message, "parse") {
		t.Errorf("Message = %q, should mention parse", err.Message)
	}
	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
}

func TestFramingFailed(t *testing.T) {
	underlying := fmt.Errorf("token too long")
	err := FramingFailed(underlying)

	if err.Code != CodeFraming {
		t.Errorf("Code = %q, want %q", err.Code, CodeFraming)
	}
	if !strings.Contains(err.Message, "framing") {
		t.Errorf("Message = %q, should mention framing", err.Message)
	}
	if !strings.Contains(err.Error(), "token too long") {
		t.Errorf("Error() = %q, should include wrapped error", err.Error())
	}
}

func TestStartupFailed(t *testing.T) {
	underlying := fmt.Errorf("config.json malformed")
	err := StartupFailed(underlying)

	if err.Code != CodeStartup {
		t.Errorf("Code = %q, want %q", err.Code, CodeStartup)
	}
	if !strings.Contains(err.Message, "start") {
		t.Errorf("Message = %q, should mention start", err.Message)
	}
	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
}

// Benchmark tests
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New(CodeNotFound, "tool not found")
	}
}

func BenchmarkWrap(b *testing.B) {
	underlying := fmt.Errorf("underlying error")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(CodeHandlerError, "handler failed", underlying)
	}
}

func BenchmarkCode(b *testing.B) {
	err := New(CodeNotFound, "not found")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Code(err)
	}
}

func BenchmarkIs(b *testing.B) {
	err := New(CodeNotFound, "not found")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Is(err, CodeNotFound)
	}
}
