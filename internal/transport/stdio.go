// Package transport implements the newline-delimited JSON stdio transport.
//
// Each frame is a single line of UTF-8 JSON terminated by '\n'. Requests are
// read from the input stream one frame at a time, dispatched, and the
// response frame is written and flushed before the next frame is read.
// Stream-level failures terminate the session; content-level failures inside
// a frame produce an error response and the loop continues.
package transport

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	mcperrors "github.com/Fuabioo/mcpd/internal/errors"
	"github.com/Fuabioo/mcpd/internal/protocol"
)

// DefaultMaxFrameBytes caps the size of a single inbound frame.
const DefaultMaxFrameBytes = 10 * 1024 * 1024

// Handler processes a decoded request and returns the response to write,
// or nil when no response should be sent.
type Handler interface {
	Handle(ctx context.Context, req *protocol.Request) *protocol.Response
}

// Stdio runs the framed request/response loop over a byte stream pair.
type Stdio struct {
	handler  Handler
	in       io.Reader
	out      io.Writer
	logger   *slog.Logger
	maxFrame int

	mu sync.Mutex
	w  *bufio.Writer
}

// New creates a transport bound to the given handler. By default it reads
// from os.Stdin and writes to os.Stdout; use options to override.
func New(handler Handler, opts ...Option) *Stdio {
	s := defaultStdio(handler)
	for _, opt := range opts {
		opt(s)
	}
	s.w = bufio.NewWriter(s.out)
	return s
}

// Serve reads frames until the input stream is exhausted or the context is
// canceled. A clean EOF returns nil. Stream corruption, oversized frames,
// and write failures are fatal and return a FRAMING_ERROR.
func (s *Stdio) Serve(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	// The scanner's effective limit is the larger of max and cap(buf), so
	// the initial buffer must not exceed the configured frame cap.
	scanner.Buffer(make([]byte, 0, min(64*1024, s.maxFrame)), s.maxFrame)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if err := s.serveFrame(ctx, line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return mcperrors.FramingFailed(fmt.Errorf("frame exceeds %d bytes", s.maxFrame))
		}
		return mcperrors.FramingFailed(err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

// serveFrame decodes one frame, dispatches it, and writes the response.
// Decode failures are recoverable: the peer gets an error response when a
// correlation ID can be salvaged from the payload, otherwise the frame is
// dropped with a warning.
func (s *Stdio) serveFrame(ctx context.Context, line []byte) error {
	var req protocol.Request
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Warn("dropping undecodable frame", "error", err)
		if id := recoverID(line); id != nil {
			return s.write(protocol.NewErrorResponse(id,
				protocol.ErrorCodeParseError, "failed to parse message payload", nil))
		}
		return nil
	}

	if err := req.Validate(); err != nil {
		s.logger.Warn("rejecting invalid request", "method", req.Method, "error", err)
		if req.IsNotification() {
			return nil
		}
		return s.write(protocol.NewErrorResponse(req.ID,
			protocol.ErrorCodeInvalidRequest, err.Error(), nil))
	}

	resp := s.handler.Handle(ctx, &req)
	if resp == nil {
		return nil
	}
	return s.write(resp)
}

func (s *Stdio) write(resp *protocol.Response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return mcperrors.FramingFailed(fmt.Errorf("failed to encode response: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.w.Write(payload); err != nil {
		return mcperrors.FramingFailed(err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return mcperrors.FramingFailed(err)
	}
	if err := s.w.Flush(); err != nil {
		return mcperrors.FramingFailed(err)
	}
	return nil
}

// recoverID salvages the correlation ID from a frame that failed to decode
// as a full request, so the parse error can still be correlated.
func recoverID(line []byte) *protocol.RequestID {
	var probe struct {
		ID *protocol.RequestID `json:"id"`
	}
	if err := json.Unmarshal(line, &probe); err != nil {
		return nil
	}
	if probe.ID == nil || probe.ID.IsNil() {
		return nil
	}
	return probe.ID
}
