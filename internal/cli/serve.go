package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fsabado/management-app-demo/internal/server"
)

// NewServeCmd starts the JSON view server.
func NewServeCmd(app *App) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the derived views as JSON endpoints",
		RunE: func(c *cobra.Command, args []string) error {
			if port <= 0 {
				port = app.Config.ServePort
			}

			srv := server.New(app.Client, app.Logger)
			baseURL, err := srv.Start(port)
			if err != nil {
				return err
			}
			app.Logger.Info("serving views", "url", baseURL)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			app.Logger.Info("shutting down")
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from config)")
	return cmd
}
