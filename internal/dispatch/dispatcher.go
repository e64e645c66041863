// Package dispatch routes decoded protocol requests to registered handlers
// and packages results or failures into response envelopes. A dispatcher
// never terminates the process for a single bad request: every per-request
// failure becomes an error response carrying the original correlation ID.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Fuabioo/mcpd/internal/errors"
	"github.com/Fuabioo/mcpd/internal/protocol"
	"github.com/Fuabioo/mcpd/internal/registry"
)

// Method names of the MCP wire protocol.
const (
	MethodInitialize  = "initialize"
	MethodPing        = "ping"
	MethodListTools   = "tools/list"
	MethodCallTool    = "tools/call"
	MethodListPrompts = "prompts/list"
	MethodGetPrompt   = "prompts/get"
)

type callToolParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type getPromptParams struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments"`
}

type listToolsResult struct {
	Tools []registry.ToolDescriptor `json:"tools"`
}

type listPromptsResult struct {
	Prompts []registry.PromptDescriptor `json:"prompts"`
}

// Dispatcher is the single entry point between the transport loop and the
// registry. It holds no per-request state; responses are produced
// synchronously and in the order requests are handed in.
type Dispatcher struct {
	reg  *registry.Registry
	info protocol.ServerInfo
}

// New creates a dispatcher over a frozen registry.
func New(reg *registry.Registry, info protocol.ServerInfo) *Dispatcher {
	return &Dispatcher{
		reg:  reg,
		info: info,
	}
}

// Handle processes one request and returns its response. Notifications
// (requests without a correlation ID) return nil: they never produce a
// response, even when the method is unknown.
func (d *Dispatcher) Handle(ctx context.Context, req *protocol.Request) *protocol.Response {
	if req.IsNotification() {
		return nil
	}

	switch req.Method {
	case MethodInitialize:
		return d.handleInitialize(req)
	case MethodPing:
		return resultResponse(req.ID, struct{}{})
	case MethodListTools:
		return resultResponse(req.ID, listToolsResult{Tools: d.reg.Tools()})
	case MethodListPrompts:
		return resultResponse(req.ID, listPromptsResult{Prompts: d.reg.Prompts()})
	case MethodCallTool:
		return d.handleCallTool(ctx, req)
	case MethodGetPrompt:
		return d.handleGetPrompt(ctx, req)
	default:
		return errorResponse(req.ID, errors.MethodNotFound(req.Method))
	}
}

func (d *Dispatcher) handleInitialize(req *protocol.Request) *protocol.Response {
	result := protocol.InitializeResult{
		ProtocolVersion: protocol.MCPVersion,
		ServerInfo:      d.info,
	}
	if len(d.reg.Tools()) > 0 {
		result.Capabilities.Tools = &protocol.ToolsCapability{ListChanged: false}
	}
	if len(d.reg.Prompts()) > 0 {
		result.Capabilities.Prompts = &protocol.PromptsCapability{ListChanged: false}
	}
	return resultResponse(req.ID, result)
}

func (d *Dispatcher) handleCallTool(ctx context.Context, req *protocol.Request) *protocol.Response {
	var params callToolParams
	if err := unmarshalParams(req.Params, &params); err != nil {
		return errorResponse(req.ID, err)
	}
	if params.Name == "" {
		return errorResponse(req.ID, errors.MissingArgument("name"))
	}

	desc, handler, err := d.reg.ResolveTool(params.Name)
	if err != nil {
		return errorResponse(req.ID, err)
	}

	if params.Arguments == nil {
		params.Arguments = map[string]any{}
	}
	if err := desc.InputSchema.Validate(params.Arguments); err != nil {
		return errorResponse(req.ID, err)
	}

	content, err := invokeTool(ctx, desc.Name, handler, params.Arguments)
	if err != nil {
		return errorResponse(req.ID, err)
	}

	return resultResponse(req.ID, protocol.CallToolResult{Content: content})
}

func (d *Dispatcher) handleGetPrompt(ctx context.Context, req *protocol.Request) *protocol.Response {
	var params getPromptParams
	if err := unmarshalParams(req.Params, &params); err != nil {
		return errorResponse(req.ID, err)
	}
	if params.Name == "" {
		return errorResponse(req.ID, errors.MissingArgument("name"))
	}

	desc, handler, err := d.reg.ResolvePrompt(params.Name)
	if err != nil {
		return errorResponse(req.ID, err)
	}

	if params.Arguments == nil {
		params.Arguments = map[string]string{}
	}
	if err := desc.ValidateArguments(params.Arguments); err != nil {
		return errorResponse(req.ID, err)
	}

	result, err := invokePrompt(ctx, desc.Name, handler, params.Arguments)
	if err != nil {
		return errorResponse(req.ID, err)
	}

	return resultResponse(req.ID, result)
}

// invokeTool calls the handler, translating panics and domain errors into
// HANDLER_ERROR so a misbehaving tool cannot take the loop down.
func invokeTool(ctx context.Context, name string, handler registry.ToolHandler, args map[string]any) (content []protocol.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = errors.HandlerFailed(name, fmt.Errorf("panic: %v", r))
		}
	}()

	content, herr := handler(ctx, args)
	if herr != nil {
		return nil, errors.HandlerFailed(name, herr)
	}
	return content, nil
}

func invokePrompt(ctx context.Context, name string, handler registry.PromptHandler, args map[string]string) (result *protocol.GetPromptResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.HandlerFailed(name, fmt.Errorf("panic: %v", r))
		}
	}()

	result, herr := handler(ctx, args)
	if herr != nil {
		return nil, errors.HandlerFailed(name, herr)
	}
	return result, nil
}

func unmarshalParams(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return errors.MissingArgument("name")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrap(errors.CodeInvalidArguments, "malformed params object", err)
	}
	return nil
}

// resultResponse wraps a result payload; a marshal failure downgrades to an
// internal error response rather than a dropped message.
func resultResponse(id *protocol.RequestID, result any) *protocol.Response {
	resp, err := protocol.NewResultResponse(id, result)
	if err != nil {
		return protocol.NewErrorResponse(id, protocol.ErrorCodeInternalError, err.Error(), nil)
	}
	return resp
}

// errorResponse maps the internal error taxonomy onto JSON-RPC error codes.
// The internal string code rides along in error.data so clients can
// distinguish, say, an unknown tool from an unknown method.
func errorResponse(id *protocol.RequestID, err error) *protocol.Response {
	var data any
	if code := errors.Code(err); code != "" {
		data = map[string]string{"code": code}
	}
	return protocol.NewErrorResponse(id, jsonrpcCode(err), err.Error(), data)
}

func jsonrpcCode(err error) protocol.ErrorCode {
	switch errors.Code(err) {
	case errors.CodeNotFound:
		return protocol.ErrorCodeMethodNotFound
	case errors.CodeInvalidArguments:
		return protocol.ErrorCodeInvalidParams
	case errors.CodeParseError:
		return protocol.ErrorCodeParseError
	default:
		return protocol.ErrorCodeInternalError
	}
}
