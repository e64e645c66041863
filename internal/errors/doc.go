// Package errors provides typed error handling for mcpd operations.
//
// Error codes mirror the server's protocol error taxonomy: per-request
// failures (NOT_FOUND, INVALID_ARGUMENTS, HANDLER_ERROR) are recovered
// locally and surfaced as failure responses, while FRAMING_ERROR and
// STARTUP_FAILED terminate the session or process.
//
// Example usage:
//
//	// Creating errors
//	err := errors.ToolNotFound("echo")
//	err := errors.MissingArgument("message")
//
//	// Wrapping errors
//	err := errors.HandlerFailed("echo", handlerErr)
//
//	// Checking error codes
//	if errors.Is(err, errors.CodeNotFound) {
//	    // handle unknown capability
//	}
//
//	// Extracting codes
//	code := errors.Code(err)
//	if code == errors.CodeFraming {
//	    // session is no longer usable
//	}
//
//	// Stdlib compatibility
//	var mcpdErr *errors.Error
//	if errors.As(err, &mcpdErr) {
//	    fmt.Println(mcpdErr.Code, mcpdErr.Message)
//	}
package errors
