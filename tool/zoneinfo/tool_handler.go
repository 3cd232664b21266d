package zoneinfo

import (
	"context"
	"encoding/json"
	"fmt"

	toolhandler "github.com/w-h-a/timekit/tool_handler"
	"github.com/w-h-a/timekit/toolkit"
)

type zoneInfoToolHandler struct {
	options toolhandler.Options
}

func (th *zoneInfoToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "get_timezone_info",
		Description: "Get the current offset and abbreviation of a specific timezone.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"zone": map[string]any{
					"type":        "string",
					"description": "Timezone name (e.g., 'America/New_York', 'Europe/London').",
				},
			},
			"required": []string{"zone"},
		},
	}
}

func (th *zoneInfoToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	raw, ok := req.Arguments["zone"]
	if !ok {
		return toolhandler.ToolResponse{}, fmt.Errorf("missing 'zone' argument")
	}

	zone, ok := raw.(string)
	if !ok {
		return toolhandler.ToolResponse{}, fmt.Errorf("argument 'zone' has invalid type: expected string, got %T", raw)
	}

	payload := toolkit.Payload(th.options.Toolkit.ZoneInfo(zone))

	content, err := json.Marshal(payload)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return toolhandler.ToolResponse{
		Content:  string(content),
		Metadata: map[string]string{"source": "toolkit", "tool": "get_timezone_info"},
	}, nil
}

func NewToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &zoneInfoToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
