package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fsabado/management-app-demo/internal/domain"
	"github.com/fsabado/management-app-demo/internal/graph"
	"github.com/fsabado/management-app-demo/internal/render"
	"github.com/fsabado/management-app-demo/internal/schedule"
)

func fetchProjectTasks(c *cobra.Command, app *App, rawID string) ([]domain.Task, error) {
	projectID, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, fmt.Errorf("invalid project id %q", rawID)
	}
	tasks, err := app.Client.ListProjectTasks(c.Context(), projectID)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	return tasks, nil
}

// NewTreeCmd renders a project's parent/child hierarchy.
func NewTreeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <project-id>",
		Short: "Show a project's task hierarchy",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			tasks, err := fetchProjectTasks(c, app, args[0])
			if err != nil {
				return err
			}
			fmt.Print(render.Tree(graph.Build(tasks)))
			return nil
		},
	}
	return cmd
}

// NewTimelineCmd renders a project's Gantt timeline.
func NewTimelineCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "timeline <project-id>",
		Short: "Show a project's Gantt timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			tasks, err := fetchProjectTasks(c, app, args[0])
			if err != nil {
				return err
			}
			tl := schedule.BuildTimeline(tasks)
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(tl)
			}
			fmt.Print(render.Gantt(tl))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit machine-readable JSON")
	return cmd
}

// NewUpcomingCmd lists tasks due in the coming window, across all projects
// or scoped to one.
func NewUpcomingCmd(app *App) *cobra.Command {
	var (
		days   int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "upcoming [project-id]",
		Short: "List tasks in the upcoming window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var tasks []domain.Task
			var err error
			if len(args) == 1 {
				tasks, err = fetchProjectTasks(c, app, args[0])
			} else {
				tasks, err = app.Client.ListTasks(c.Context())
				if err != nil {
					err = fmt.Errorf("fetch tasks: %w", err)
				}
			}
			if err != nil {
				return err
			}

			window := days
			if window <= 0 {
				window = app.Config.UpcomingDays
			}
			upcoming := schedule.UpcomingTasks(tasks, window)
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(upcoming)
			}
			fmt.Printf("Tasks in the next %d days:\n", window)
			fmt.Print(render.TaskTable(upcoming))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "window length in days (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit machine-readable JSON")
	return cmd
}
