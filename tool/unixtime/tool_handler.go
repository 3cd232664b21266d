package unixtime

import (
	"context"
	"encoding/json"
	"fmt"

	toolhandler "github.com/w-h-a/timekit/tool_handler"
	"github.com/w-h-a/timekit/toolkit"
	getsafe "github.com/w-h-a/timekit/util/get_safe"
)

type unixTimeToolHandler struct {
	options toolhandler.Options
}

func (th *unixTimeToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "unix_to_datetime",
		Description: "Convert a Unix timestamp to a calendar datetime.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"timestamp": map[string]any{
					"type":        "integer",
					"description": "Unix timestamp in seconds since the epoch (may be negative).",
				},
				"zone": map[string]any{
					"type":        "string",
					"description": "Optional timezone name for the output. Defaults to local time.",
				},
			},
			"required": []string{"timestamp"},
		},
	}
}

func (th *unixTimeToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	raw, ok := req.Arguments["timestamp"]
	if !ok {
		return toolhandler.ToolResponse{}, fmt.Errorf("missing 'timestamp' argument")
	}

	timestamp, ok := getsafe.Int(req.Arguments, "timestamp")
	if !ok {
		return toolhandler.ToolResponse{}, fmt.Errorf("argument 'timestamp' has invalid type: expected integer, got %T", raw)
	}

	payload := toolkit.Payload(th.options.Toolkit.FromUnix(timestamp, getsafe.String(req.Arguments, "zone")))

	content, err := json.Marshal(payload)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return toolhandler.ToolResponse{
		Content:  string(content),
		Metadata: map[string]string{"source": "toolkit", "tool": "unix_to_datetime"},
	}, nil
}

func NewToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &unixTimeToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
