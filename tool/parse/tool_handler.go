package parse

import (
	"context"
	"encoding/json"
	"fmt"

	toolhandler "github.com/w-h-a/timekit/tool_handler"
	"github.com/w-h-a/timekit/toolkit"
	getsafe "github.com/w-h-a/timekit/util/get_safe"
)

type parseToolHandler struct {
	options toolhandler.Options
}

func (th *parseToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "parse_datetime",
		Description: "Parse a date/time string and return detailed information about it.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "The date/time string to parse.",
				},
				"format": map[string]any{
					"type":        "string",
					"description": "The format of the input string (default: '%Y-%m-%d %H:%M:%S').",
				},
			},
			"required": []string{"text"},
		},
		Examples: []map[string]any{
			{"text": "2025-11-21 14:30:00"},
			{"text": "21/11/2025 14:30", "format": "%d/%m/%Y %H:%M"},
		},
	}
}

func (th *parseToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	raw, ok := req.Arguments["text"]
	if !ok {
		return toolhandler.ToolResponse{}, fmt.Errorf("missing 'text' argument")
	}

	text, ok := raw.(string)
	if !ok {
		return toolhandler.ToolResponse{}, fmt.Errorf("argument 'text' has invalid type: expected string, got %T", raw)
	}

	payload := toolkit.Payload(th.options.Toolkit.Parse(text, getsafe.String(req.Arguments, "format")))

	content, err := json.Marshal(payload)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return toolhandler.ToolResponse{
		Content:  string(content),
		Metadata: map[string]string{"source": "toolkit", "tool": "parse_datetime"},
	}, nil
}

func NewToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &parseToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
