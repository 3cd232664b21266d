package delta

import (
	"context"
	"encoding/json"
	"fmt"

	toolhandler "github.com/w-h-a/timekit/tool_handler"
	"github.com/w-h-a/timekit/toolkit"
	getsafe "github.com/w-h-a/timekit/util/get_safe"
)

type addDeltaToolHandler struct {
	options toolhandler.Options
}

func (th *addDeltaToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "add_time_delta",
		Description: "Add or subtract time from a given datetime. Use negative values to subtract.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"base": map[string]any{
					"type":        "string",
					"description": "The starting datetime string.",
				},
				"days": map[string]any{
					"type":        "integer",
					"description": "Number of days to add (can be negative).",
				},
				"hours": map[string]any{
					"type":        "integer",
					"description": "Number of hours to add (can be negative).",
				},
				"minutes": map[string]any{
					"type":        "integer",
					"description": "Number of minutes to add (can be negative).",
				},
				"seconds": map[string]any{
					"type":        "integer",
					"description": "Number of seconds to add (can be negative).",
				},
				"format": map[string]any{
					"type":        "string",
					"description": "The format of the base string (default: '%Y-%m-%d %H:%M:%S').",
				},
			},
			"required": []string{"base"},
		},
		Examples: []map[string]any{
			{"base": "2025-01-01 00:00:00", "days": 10, "hours": 5},
		},
	}
}

func (th *addDeltaToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	raw, ok := req.Arguments["base"]
	if !ok {
		return toolhandler.ToolResponse{}, fmt.Errorf("missing 'base' argument")
	}

	base, ok := raw.(string)
	if !ok {
		return toolhandler.ToolResponse{}, fmt.Errorf("argument 'base' has invalid type: expected string, got %T", raw)
	}

	days, _ := getsafe.Int(req.Arguments, "days")
	hours, _ := getsafe.Int(req.Arguments, "hours")
	minutes, _ := getsafe.Int(req.Arguments, "minutes")
	seconds, _ := getsafe.Int(req.Arguments, "seconds")

	payload := toolkit.Payload(th.options.Toolkit.AddDelta(
		base,
		int(days),
		int(hours),
		int(minutes),
		int(seconds),
		getsafe.String(req.Arguments, "format"),
	))

	content, err := json.Marshal(payload)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return toolhandler.ToolResponse{
		Content:  string(content),
		Metadata: map[string]string{"source": "toolkit", "tool": "add_time_delta"},
	}, nil
}

func NewToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &addDeltaToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
