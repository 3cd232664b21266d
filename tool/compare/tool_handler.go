package compare

import (
	"context"
	"encoding/json"
	"fmt"

	toolhandler "github.com/w-h-a/timekit/tool_handler"
	"github.com/w-h-a/timekit/toolkit"
	getsafe "github.com/w-h-a/timekit/util/get_safe"
)

type compareToolHandler struct {
	options toolhandler.Options
}

func (th *compareToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "compare_times",
		Description: "Compare two datetime strings and return their difference.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"a": map[string]any{
					"type":        "string",
					"description": "First datetime string.",
				},
				"b": map[string]any{
					"type":        "string",
					"description": "Second datetime string.",
				},
				"format": map[string]any{
					"type":        "string",
					"description": "The format both strings use (default: '%Y-%m-%d %H:%M:%S').",
				},
			},
			"required": []string{"a", "b"},
		},
	}
}

func (th *compareToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	a, err := stringArg(req.Arguments, "a")
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	b, err := stringArg(req.Arguments, "b")
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	payload := toolkit.Payload(th.options.Toolkit.Compare(a, b, getsafe.String(req.Arguments, "format")))

	content, err := json.Marshal(payload)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return toolhandler.ToolResponse{
		Content:  string(content),
		Metadata: map[string]string{"source": "toolkit", "tool": "compare_times"},
	}, nil
}

func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing '%s' argument", key)
	}

	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("argument '%s' has invalid type: expected string, got %T", key, raw)
	}

	return s, nil
}

func NewToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &compareToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
