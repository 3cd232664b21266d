package toolhandler

import "context"

type ToolHandler interface {
	Spec() ToolSpec
	Invoke(ctx context.Context, req ToolRequest) (ToolResponse, error)
}

type ToolRequest struct {
	Arguments map[string]any `json:"arguments"`
}

type ToolResponse struct {
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
