package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsabado/management-app-demo/internal/render"
)

// NewProjectsCmd lists all projects with their computed metrics.
func NewProjectsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects with task counts and date spans",
		RunE: func(c *cobra.Command, args []string) error {
			overview, err := app.Client.ProjectOverview(c.Context())
			if err != nil {
				return fmt.Errorf("fetch projects: %w", err)
			}
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(overview)
			}
			fmt.Print(render.ProjectTable(overview))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit machine-readable JSON")
	return cmd
}
