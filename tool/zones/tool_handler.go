package zones

import (
	"context"
	"encoding/json"

	toolhandler "github.com/w-h-a/timekit/tool_handler"
	"github.com/w-h-a/timekit/toolkit"
	getsafe "github.com/w-h-a/timekit/util/get_safe"
)

type listZonesToolHandler struct {
	options toolhandler.Options
}

func (th *listZonesToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "list_timezones",
		Description: "List available timezone names, optionally filtered by substring.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"filter": map[string]any{
					"type":        "string",
					"description": "Optional case-insensitive substring to filter timezone names.",
				},
			},
		},
	}
}

func (th *listZonesToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	payload := toolkit.Payload(th.options.Toolkit.ListZones(getsafe.String(req.Arguments, "filter")))

	content, err := json.Marshal(payload)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return toolhandler.ToolResponse{
		Content:  string(content),
		Metadata: map[string]string{"source": "toolkit", "tool": "list_timezones"},
	}, nil
}

func NewToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &listZonesToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
