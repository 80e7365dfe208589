package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
	"github.com/preston-bernstein/friday-night-bytes/internal/server"
)

func newServeCommand(env Env, verbose *bool) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the games API and, with Pushover configured, the weekly notification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := env.LoadConfig()
			if port != "" {
				cfg.Port = port
			}
			logger := env.logger(cfg, false, *verbose)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := env.Build(ctx, cfg, logger)
			srv, err := server.New(app)
			if err != nil {
				_ = app.Shutdown(context.Background())
				return err
			}
			logging.Info(logger, "starting", logging.FieldProvider, app.SourceName, "scheduled", srv.Scheduled())
			srv.Run(ctx, stop)
			return nil
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}
