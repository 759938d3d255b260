package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fsabado/management-app-demo/internal/graph"
	"github.com/fsabado/management-app-demo/internal/render"
)

// buildTaskGraph fetches the task's project task list and enriches it.
func buildTaskGraph(c *cobra.Command, app *App, rawID string) (*graph.Graph, int, error) {
	taskID, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid task id %q", rawID)
	}

	task, err := app.Client.GetTask(c.Context(), taskID)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch task: %w", err)
	}
	tasks, err := app.Client.ListProjectTasks(c.Context(), task.ProjectID)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch project tasks: %w", err)
	}
	return graph.Build(tasks), taskID, nil
}

// NewPathCmd shows everything that must precede or contain a task.
func NewPathCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "path <task-id>",
		Short: "Show a task's prerequisite path",
		Long:  "Walks prerequisite and parent links upstream from the task, listing everything that must logically precede or contain it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			g, taskID, err := buildTaskGraph(c, app, args[0])
			if err != nil {
				return err
			}
			path := g.PrerequisitePath(taskID)
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(path)
			}
			fmt.Print(render.PathList(path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit machine-readable JSON")
	return cmd
}

// NewImpactCmd shows everything affected if a task slips.
func NewImpactCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "impact <task-id>",
		Short: "Show the tasks affected if this task slips",
		Long:  "Walks dependent and child links downstream from the task, listing everything affected by a delay. The task itself is not included.",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			g, taskID, err := buildTaskGraph(c, app, args[0])
			if err != nil {
				return err
			}
			affected := g.DependentTasks(taskID)
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(affected)
			}
			if len(affected) == 0 {
				fmt.Println("Nothing downstream of this task.")
				return nil
			}
			fmt.Print(render.PathList(affected))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit machine-readable JSON")
	return cmd
}
