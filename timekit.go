// Package timekit assembles the time toolkit's tool handlers behind a
// single dispatch facade suitable for embedding in an agent or serving
// over a transport.
package timekit

import (
	"context"

	service "github.com/w-h-a/timekit/internal/service/toolkit"
	"github.com/w-h-a/timekit/tool/compare"
	"github.com/w-h-a/timekit/tool/currenttime"
	"github.com/w-h-a/timekit/tool/delta"
	"github.com/w-h-a/timekit/tool/parse"
	"github.com/w-h-a/timekit/tool/unixtime"
	"github.com/w-h-a/timekit/tool/validate"
	"github.com/w-h-a/timekit/tool/zoneinfo"
	"github.com/w-h-a/timekit/tool/zones"
	toolhandler "github.com/w-h-a/timekit/tool_handler"
)

type TimeKit struct {
	service *service.Service
}

// Call invokes the named operation with the given arguments and returns the
// serialized structured payload.
func (t *TimeKit) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	return t.service.Call(ctx, name, args)
}

// Tools returns the specs of every registered operation in registration
// order, for discovery by a dispatcher.
func (t *TimeKit) Tools() []toolhandler.ToolSpec {
	return t.service.ListSpecs()
}

func New(opts ...toolhandler.Option) (*TimeKit, error) {
	svc := service.New()

	handlers := []toolhandler.ToolHandler{
		currenttime.NewToolHandler(opts...),
		zoneinfo.NewToolHandler(opts...),
		zones.NewToolHandler(opts...),
		parse.NewToolHandler(opts...),
		compare.NewToolHandler(opts...),
		delta.NewToolHandler(opts...),
		validate.NewToolHandler(opts...),
		unixtime.NewToolHandler(opts...),
	}

	for _, th := range handlers {
		if err := svc.Register(th); err != nil {
			return nil, err
		}
	}

	return &TimeKit{service: svc}, nil
}
