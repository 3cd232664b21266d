package validate

import (
	"context"
	"encoding/json"
	"fmt"

	toolhandler "github.com/w-h-a/timekit/tool_handler"
	"github.com/w-h-a/timekit/toolkit"
	getsafe "github.com/w-h-a/timekit/util/get_safe"
)

type validateToolHandler struct {
	options toolhandler.Options
}

func (th *validateToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "is_valid_datetime",
		Description: "Check whether a string is a valid datetime in the specified format.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "The date/time string to validate.",
				},
				"format": map[string]any{
					"type":        "string",
					"description": "The expected format (default: '%Y-%m-%d %H:%M:%S').",
				},
			},
			"required": []string{"text"},
		},
	}
}

func (th *validateToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	raw, ok := req.Arguments["text"]
	if !ok {
		return toolhandler.ToolResponse{}, fmt.Errorf("missing 'text' argument")
	}

	text, ok := raw.(string)
	if !ok {
		return toolhandler.ToolResponse{}, fmt.Errorf("argument 'text' has invalid type: expected string, got %T", raw)
	}

	payload := toolkit.Payload(th.options.Toolkit.Validate(text, getsafe.String(req.Arguments, "format")))

	content, err := json.Marshal(payload)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return toolhandler.ToolResponse{
		Content:  string(content),
		Metadata: map[string]string{"source": "toolkit", "tool": "is_valid_datetime"},
	}, nil
}

func NewToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &validateToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
