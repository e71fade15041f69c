package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/felixgeelhaar/sharepoint-go/domain/tool"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/mcp"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/memory"
)

func stubTool(t *testing.T, name string) tool.Tool {
	t.Helper()
	return tool.NewBuilder(name).
		WithDescription("A test tool").
		WithHandler(func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			return tool.Result{Output: json.RawMessage(`{"success":true}`)}, nil
		}).
		MustBuild()
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	registry := memory.NewToolRegistry()
	if err := registry.Register(stubTool(t, "test_tool")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	srv := mcp.NewServer(mcp.ServerConfig{
		Name:     "test-server",
		Version:  "1.0.0",
		Registry: registry,
	})

	if srv == nil {
		t.Fatal("NewServer() returned nil")
	}
}

func TestNewServerNilRegistry(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerConfig{
		Name:    "empty-server",
		Version: "1.0.0",
	})

	if srv == nil {
		t.Fatal("NewServer() returned nil")
	}
}

func TestNewServerWithInstructions(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerConfig{
		Name:         "test-server",
		Version:      "1.0.0",
		Registry:     memory.NewToolRegistry(),
		Instructions: "Use the tools wisely.",
	})

	if srv == nil {
		t.Fatal("NewServer() returned nil")
	}
}
