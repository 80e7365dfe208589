package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
	"github.com/preston-bernstein/friday-night-bytes/internal/notify"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
	"github.com/preston-bernstein/friday-night-bytes/internal/schedule"
	"github.com/preston-bernstein/friday-night-bytes/internal/scheduler"
)

// errNoFavorites explains how to configure unattended runs.
var errNoFavorites = errors.New("no favourite teams configured: set NBA_TEAMS, NFL_TEAMS or MLB_TEAMS")

func newWatchCommand(env Env, verbose *bool) *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the weekly check on NOTIFY_SCHEDULE and push the summary",
		Long: `Runs the weekly check for the configured favourite teams on a cron schedule and sends the
summary through Pushover. Without Pushover credentials the summary is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := env.LoadConfig()
			logger := env.logger(cfg, false, *verbose)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := env.Build(ctx, cfg, logger)
			defer func() {
				if err := app.Shutdown(context.Background()); err != nil {
					logging.Warn(logger, "metrics shutdown failed", "error", err)
				}
			}()

			prefs, err := app.FavoritePreferences()
			if errors.Is(err, preferences.ErrNoTeams) {
				return errNoFavorites
			}
			if err != nil {
				return err
			}
			if !cfg.Notify.Enabled() {
				app.Notifier = notify.NewWriterNotifier(cmd.OutOrStdout())
			}

			sched, err := scheduler.New(app.Service(schedule.NopObserver{}, nil), prefs, scheduler.Config{
				Schedule:   cfg.Notify.Schedule,
				Location:   app.ReferenceZone,
				RunOnStart: cfg.Notify.RunOnStart,
			}, logger)
			if err != nil {
				return err
			}
			if once {
				return sched.RunOnce(ctx)
			}

			if err := sched.Start(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watching %s on %q, next run %s\n",
				describePreferences(prefs), cfg.Notify.Schedule, sched.Status().NextRun.Format("Mon Jan 2 15:04 MST"))
			<-ctx.Done()
			return sched.Stop(context.Background())
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "run a single check now and exit")
	return cmd
}
