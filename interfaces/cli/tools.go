package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// toolInfo is the JSON shape printed by the tools command.
type toolInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ReadOnly    bool            `json:"read_only"`
	Destructive bool            `json:"destructive"`
	InputSchema json.RawMessage `json:"input_schema,omitempty"`
}

// newToolsCmd creates the tools command.
func (a *App) newToolsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools the connector exposes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			p, err := buildPack(cfg)
			if err != nil {
				return err
			}

			if asJSON {
				infos := make([]toolInfo, 0, len(p.Tools))
				for _, t := range p.Tools {
					infos = append(infos, toolInfo{
						Name:        t.Name(),
						Description: t.Description(),
						ReadOnly:    t.Annotations().ReadOnly,
						Destructive: t.Annotations().Destructive,
						InputSchema: t.InputSchema().Raw(),
					})
				}
				out, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, string(out))
				return nil
			}

			fmt.Fprintf(a.stdout, "%s %s - %s\n\n", p.Name, p.Version, p.Description)
			for _, t := range p.Tools {
				marker := " "
				switch {
				case t.Annotations().Destructive:
					marker = "!"
				case t.Annotations().ReadOnly:
					marker = "r"
				}
				fmt.Fprintf(a.stdout, "  [%s] %-22s %s\n", marker, t.Name(), t.Description())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print tool definitions as JSON")

	return cmd
}
