package toolkit

import (
	"context"
	"encoding/json"
	"fmt"

	toolhandler "github.com/w-h-a/timekit/tool_handler"
)

// Service dispatches named calls onto registered tool handlers. It is the
// operation boundary: a panic anywhere below is converted into a structured
// error payload instead of crossing to the caller.
type Service struct {
	catalog *Catalog
}

func (s *Service) Register(th toolhandler.ToolHandler) error {
	return s.catalog.Register(th)
}

func (s *Service) ListSpecs() []toolhandler.ToolSpec {
	return s.catalog.ListSpecs()
}

func (s *Service) Call(ctx context.Context, name string, args map[string]any) (content string, err error) {
	th, spec, ok := s.catalog.Get(name)
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", name)
	}

	defer func() {
		if r := recover(); r != nil {
			b, _ := json.Marshal(map[string]any{
				"error": fmt.Sprintf("%s failed: %v", spec.Name, r),
			})
			content = string(b)
			err = nil
		}
	}()

	if args == nil {
		args = map[string]any{}
	}

	rsp, err := th.Invoke(ctx, toolhandler.ToolRequest{Arguments: args})
	if err != nil {
		return "", err
	}

	return rsp.Content, nil
}

func New() *Service {
	return &Service{
		catalog: NewCatalog(),
	}
}
