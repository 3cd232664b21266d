package currenttime

import (
	"context"
	"encoding/json"

	toolhandler "github.com/w-h-a/timekit/tool_handler"
	"github.com/w-h-a/timekit/toolkit"
	getsafe "github.com/w-h-a/timekit/util/get_safe"
)

type currentTimeToolHandler struct {
	options toolhandler.Options
}

func (th *currentTimeToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "get_current_time",
		Description: "Get the current date and time, optionally in a specific timezone.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"zone": map[string]any{
					"type":        "string",
					"description": "Optional timezone name (e.g., 'America/New_York', 'UTC'). Defaults to local time.",
				},
			},
		},
	}
}

func (th *currentTimeToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	payload := toolkit.Payload(th.options.Toolkit.CurrentTime(getsafe.String(req.Arguments, "zone")))

	content, err := json.Marshal(payload)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return toolhandler.ToolResponse{
		Content:  string(content),
		Metadata: map[string]string{"source": "toolkit", "tool": "get_current_time"},
	}, nil
}

func NewToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &currentTimeToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
