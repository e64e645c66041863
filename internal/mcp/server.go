// Package mcp wires the registry, dispatcher, and stdio transport into a
// runnable MCP server.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Fuabioo/mcpd/internal/core"
	"github.com/Fuabioo/mcpd/internal/dispatch"
	"github.com/Fuabioo/mcpd/internal/errors"
	"github.com/Fuabioo/mcpd/internal/protocol"
	"github.com/Fuabioo/mcpd/internal/registry"
	"github.com/Fuabioo/mcpd/internal/tools"
	"github.com/Fuabioo/mcpd/internal/transport"
)

const (
	serverName    = "mcpd"
	serverVersion = "0.1.0"
)

// Server binds a frozen registry and dispatcher to a stdio transport.
type Server struct {
	cfg       *core.Config
	reg       *registry.Registry
	sessionID string
	logger    *slog.Logger

	in  io.Reader
	out io.Writer
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithIO overrides the transport streams. Intended for tests.
func WithIO(in io.Reader, out io.Writer) ServerOption {
	return func(s *Server) {
		s.in = in
		s.out = out
	}
}

// WithLogOutput redirects diagnostic logging. Intended for tests.
func WithLogOutput(w io.Writer) ServerOption {
	return func(s *Server) {
		s.logger = slog.New(slog.NewTextHandler(w, nil))
	}
}

// NewServer loads configuration, registers the built-in tool set, and
// freezes the registry. A registration or config failure is a startup
// failure; nothing has touched the transport yet.
func NewServer(opts ...ServerOption) (*Server, error) {
	dataDir, err := core.DataDir()
	if err != nil {
		return nil, errors.StartupFailed(fmt.Errorf("failed to get data directory: %w", err))
	}

	cfg, err := core.LoadConfig(dataDir)
	if err != nil {
		return nil, errors.StartupFailed(fmt.Errorf("failed to load config: %w", err))
	}

	reg := registry.New()
	if err := tools.Register(reg); err != nil {
		return nil, errors.StartupFailed(fmt.Errorf("failed to register tools: %w", err))
	}
	reg.Freeze()

	s := &Server{
		cfg:       cfg,
		reg:       reg,
		sessionID: uuid.New().String(),
		in:        os.Stdin,
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLogLevel(cfg.Log.Level),
		}))
	}
	s.logger = s.logger.With("session", s.sessionID)

	return s, nil
}

// Serve runs the framed request loop until the input stream closes or the
// context is canceled.
func (s *Server) Serve(ctx context.Context) error {
	info := protocol.ServerInfo{Name: serverName, Version: serverVersion}

	var handler transport.Handler = dispatch.New(s.reg, info)
	if timeout := s.cfg.Limits.HandlerTimeoutMS; timeout > 0 {
		handler = timeoutHandler{
			next:    handler,
			timeout: time.Duration(timeout) * time.Millisecond,
		}
	}

	t := transport.New(handler,
		transport.WithIO(s.in, s.out),
		transport.WithLogger(s.logger),
		transport.WithMaxFrameBytes(s.cfg.Limits.MaxFrameBytes))

	s.logger.Info("serving",
		"tools", len(s.reg.Tools()),
		"prompts", len(s.reg.Prompts()))

	err := t.Serve(ctx)
	if err != nil {
		s.logger.Error("session terminated", "error", err)
		return err
	}
	s.logger.Info("session closed")
	return nil
}

// timeoutHandler bounds the time each request may spend in a handler.
type timeoutHandler struct {
	next    transport.Handler
	timeout time.Duration
}

func (h timeoutHandler) Handle(ctx context.Context, req *protocol.Request) *protocol.Response {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.next.Handle(ctx, req)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Serve creates a server and runs it on stdio.
func Serve() error {
	srv, err := NewServer()
	if err != nil {
		return err
	}

	if err := srv.Serve(context.Background()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
