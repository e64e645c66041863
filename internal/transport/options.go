package transport

import (
	"io"
	"log/slog"
	"os"
)

// Option configures a Stdio transport.
type Option func(*Stdio)

// WithIO overrides the input and output streams. Intended for tests and
// for embedding the transport behind pipes.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Stdio) {
		s.in = in
		s.out = out
	}
}

// WithLogger sets the structured logger used for transport diagnostics.
// Logs never touch the output stream.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stdio) {
		s.logger = logger
	}
}

// WithMaxFrameBytes caps the size of a single inbound frame. Frames larger
// than the cap corrupt the stream position and terminate the session.
func WithMaxFrameBytes(n int) Option {
	return func(s *Stdio) {
		if n > 0 {
			s.maxFrame = n
		}
	}
}

func defaultStdio(handler Handler) *Stdio {
	return &Stdio{
		handler:  handler,
		in:       os.Stdin,
		out:      os.Stdout,
		logger:   slog.New(slog.NewTextHandler(os.Stderr, nil)),
		maxFrame: DefaultMaxFrameBytes,
	}
}
