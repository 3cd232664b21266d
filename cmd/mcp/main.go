package main

import (
	"context"
	"encoding/json"
	"log"
	_ "time/tzdata"

	"github.com/alecthomas/kong"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/w-h-a/timekit"
)

var (
	cfg struct {
		Name    string `help:"Server name advertised to MCP clients" default:"time-server"`
		Version string `help:"Server version advertised to MCP clients" default:"1.0.0"`
	}
)

func main() {
	// Parse inputs
	_ = kong.Parse(&cfg)

	// Create the toolkit
	kit, err := timekit.New()
	if err != nil {
		log.Fatalf("failed to build toolkit: %v", err)
	}

	// Expose every registered tool over MCP
	srv := server.NewMCPServer(cfg.Name, cfg.Version)

	for _, spec := range kit.Tools() {
		schema, err := json.Marshal(spec.InputSchema)
		if err != nil {
			log.Fatalf("failed to marshal schema for %s: %v", spec.Name, err)
		}

		name := spec.Name
		tool := mcp.NewToolWithRawSchema(name, spec.Description, schema)

		srv.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			content, err := kit.Call(ctx, name, req.GetArguments())
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(content), nil
		})
	}

	if err := server.ServeStdio(srv); err != nil {
		log.Fatalf("mcp server error: %v", err)
	}
}
