// Package cli provides the command-line interface for the connector.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/sharepoint-go/domain/pack"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/auth"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/config"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/graph"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/logging"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/telemetry"
	"github.com/felixgeelhaar/sharepoint-go/pack/sharepoint"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App represents the CLI application.
type App struct {
	root       *cobra.Command
	stdout     io.Writer
	stderr     io.Writer
	configPath string
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "sharepoint",
		Short: "SharePoint/OneDrive connector for tool-calling runtimes",
		Long: `sharepoint-go exposes SharePoint/OneDrive file and folder operations as
callable tools over the Model Context Protocol. It authenticates with a
delegated OAuth token or Azure AD app credentials and wraps the Microsoft
Graph drive API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.root.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "path to YAML config file")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newServeCmd(),
		app.newToolsCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "sharepoint-go version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}

// loadConfig loads configuration from the --config file or the environment.
func (a *App) loadConfig() (config.Config, error) {
	loader := config.NewLoader()
	if a.configPath != "" {
		return loader.Load(a.configPath)
	}
	return loader.LoadFromEnv(), nil
}

// buildPack assembles the connector from configuration: credential provider,
// graph client, and the sharepoint tool pack.
func buildPack(cfg config.Config) (*pack.Pack, error) {
	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	var provider auth.TokenProvider
	switch cfg.Auth.Mode {
	case "azure":
		p, err := auth.NewAzureProvider(auth.AzureConfig{
			TenantID:     cfg.Auth.TenantID,
			ClientID:     cfg.Auth.ClientID,
			ClientSecret: cfg.Auth.ClientSecret,
		})
		if err != nil {
			return nil, err
		}
		provider = p
	case "", "delegated":
		provider = auth.NewDelegatedProvider(auth.DelegatedConfig{
			AccessToken:  cfg.Auth.AccessToken,
			RefreshToken: cfg.Auth.RefreshToken,
			ClientID:     cfg.Auth.ClientID,
		})
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}

	metrics := telemetry.NewMetricsProvider(telemetry.DefaultMetricsConfig())

	client, err := graph.NewClient(provider, graph.WithMetrics(metrics))
	if err != nil {
		return nil, err
	}

	return sharepoint.New(client, sharepoint.WithMetrics(metrics))
}
