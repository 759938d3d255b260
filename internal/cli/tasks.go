package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fsabado/management-app-demo/internal/domain"
	"github.com/fsabado/management-app-demo/internal/render"
	"github.com/fsabado/management-app-demo/internal/schedule"
)

// NewTasksCmd lists a project's tasks, optionally filtered by status or
// grouped by date.
func NewTasksCmd(app *App) *cobra.Command {
	var (
		status      string
		groupByDate bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "tasks <project-id>",
		Short: "List a project's tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}

			tasks, err := app.Client.ListProjectTasks(c.Context(), projectID)
			if err != nil {
				return fmt.Errorf("fetch tasks: %w", err)
			}

			if status != "" {
				want := domain.NormalizeStatus(status)
				var filtered []domain.Task
				for _, t := range tasks {
					if t.Status == want {
						filtered = append(filtered, t)
					}
				}
				tasks = filtered
			}

			if groupByDate {
				groups := schedule.GroupTasksByDate(tasks)
				if asJSON {
					return json.NewEncoder(os.Stdout).Encode(groups)
				}
				for _, group := range groups {
					fmt.Printf("\n%s\n", render.Bold(group.Date.Format("Mon Jan 2, 2006")))
					fmt.Print(render.TaskTable(group.Tasks))
				}
				if len(groups) == 0 {
					fmt.Println("No dated tasks found.")
				}
				return nil
			}

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(tasks)
			}
			fmt.Print(render.TaskTable(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (planned, in-progress, completed, cancelled)")
	cmd.Flags().BoolVar(&groupByDate, "group-by-date", false, "group tasks by start (or due) date")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit machine-readable JSON")
	return cmd
}
