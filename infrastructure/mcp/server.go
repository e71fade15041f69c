// Package mcp exposes the connector's tools over the Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"

	mcpgo "github.com/felixgeelhaar/mcp-go"

	"github.com/felixgeelhaar/sharepoint-go/domain/tool"
)

// Server wraps an MCP server around a tool registry.
type Server struct {
	srv      *mcpgo.Server
	registry tool.Registry
}

// ServerConfig configures the MCP server.
type ServerConfig struct {
	// Name is the server name announced to clients.
	Name string

	// Version is the server version.
	Version string

	// Registry holds the tools to expose.
	Registry tool.Registry

	// Instructions provides usage instructions for clients.
	Instructions string
}

// NewServer creates an MCP server exposing all registered tools.
func NewServer(cfg ServerConfig) *Server {
	info := mcpgo.ServerInfo{
		Name:    cfg.Name,
		Version: cfg.Version,
		Capabilities: mcpgo.Capabilities{
			Tools: true,
		},
	}

	var opts []mcpgo.Option
	if cfg.Instructions != "" {
		opts = append(opts, mcpgo.WithInstructions(cfg.Instructions))
	}

	s := &Server{
		srv:      mcpgo.NewServer(info, opts...),
		registry: cfg.Registry,
	}
	s.registerAll()

	return s
}

// registerAll exposes every registered tool, with its annotations folded
// into the description so MCP clients see the behavioral contract.
func (s *Server) registerAll() {
	if s.registry == nil {
		return
	}
	for _, t := range s.registry.List() {
		s.srv.Tool(t.Name()).
			Description(describe(t)).
			Handler(bridge(t))
	}
}

// describe renders a tool description for MCP clients, tagging tools whose
// annotations a host may want to gate on.
func describe(t tool.Tool) string {
	desc := t.Description()
	ann := t.Annotations()
	switch {
	case ann.Destructive:
		desc += " [destructive]"
	case ann.ReadOnly:
		desc += " [read-only]"
	}
	return desc
}

// bridge adapts a connector tool handler to the string-result contract the
// MCP layer expects. Errors pass through untranslated.
func bridge(t tool.Tool) func(ctx context.Context, input json.RawMessage) (string, error) {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		result, err := t.Execute(ctx, input)
		if err != nil {
			return "", err
		}
		return result.OutputString(), nil
	}
}

// ServeStdio runs the server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context, opts ...mcpgo.ServeOption) error {
	return mcpgo.ServeStdio(ctx, s.srv, opts...)
}

// ServeHTTP runs the server over HTTP with SSE.
func (s *Server) ServeHTTP(ctx context.Context, addr string, opts ...mcpgo.HTTPOption) error {
	return mcpgo.ServeHTTP(ctx, s.srv, addr, opts...)
}
