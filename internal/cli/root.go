// Package cli wires the taskboard subcommands.
package cli

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fsabado/management-app-demo/internal/api"
	"github.com/fsabado/management-app-demo/internal/config"
)

// App carries the shared state the subcommands run against. It is built
// once in the root command's PersistentPreRunE, after flags are parsed.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Client *api.Client

	// Flag values; empty/zero means "not set, keep config".
	flagConfig  string
	flagAPIURL  string
	flagLevel   string
	flagTimeout int
}

// NewRootCmd creates the taskboard root command.
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskboard",
		Short:        "Project and task dependency views",
		Long:         "Fetches projects and tasks from the management API and renders dependency, hierarchy, and timeline views.",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return app.setup()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.flagConfig, "config", "", "config file path")
	flags.StringVar(&app.flagAPIURL, "api-url", "", "management API base URL")
	flags.StringVar(&app.flagLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.IntVar(&app.flagTimeout, "timeout", 0, "request timeout in seconds")

	cmd.AddCommand(
		NewProjectsCmd(app),
		NewTasksCmd(app),
		NewPathCmd(app),
		NewImpactCmd(app),
		NewTreeCmd(app),
		NewTimelineCmd(app),
		NewUpcomingCmd(app),
		NewServeCmd(app),
	)

	return cmd
}

// setup layers flags over the loaded config and builds the logger and
// client.
func (a *App) setup() error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}
	if a.flagAPIURL != "" {
		cfg.APIURL = a.flagAPIURL
	}
	if a.flagLevel != "" {
		cfg.LogLevel = a.flagLevel
	}
	if a.flagTimeout > 0 {
		cfg.TimeoutSeconds = a.flagTimeout
	}

	a.Config = cfg
	a.Logger = cfg.NewLogger(os.Stderr)
	a.Client = api.New(cfg.APIURL,
		api.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
		api.WithLogger(a.Logger),
	)
	return nil
}
