package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/sharepoint-go/infrastructure/logging"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/mcp"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/memory"
)

// newServeCmd creates the serve command.
func (a *App) newServeCmd() *cobra.Command {
	var transport string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the connector tools over MCP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if transport != "" {
				cfg.Server.Transport = transport
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx := cmd.Context()
			p, err := buildPack(cfg)
			if err != nil {
				return err
			}

			registry := memory.NewToolRegistry()
			if err := p.Register(registry); err != nil {
				return err
			}

			srv := mcp.NewServer(mcp.ServerConfig{
				Name:         "sharepoint",
				Version:      Version,
				Registry:     registry,
				Instructions: "Tools for listing, creating, reading and deleting SharePoint/OneDrive files and folders.",
			})

			switch cfg.Server.Transport {
			case "", "stdio":
				logging.Info().Msg("serving MCP over stdio")
				return srv.ServeStdio(ctx)
			case "http":
				logging.Info().Add(logging.Addr(cfg.Server.Addr)).Msg("serving MCP over http")
				return srv.ServeHTTP(ctx, cfg.Server.Addr)
			default:
				return fmt.Errorf("unknown transport %q", cfg.Server.Transport)
			}
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "", "MCP transport (stdio or http)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address for the http transport")

	return cmd
}
