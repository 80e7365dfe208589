package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/friday-night-bytes/internal/app/checker"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
	"github.com/preston-bernstein/friday-night-bytes/internal/notify"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
	"github.com/preston-bernstein/friday-night-bytes/internal/schedule"
	"github.com/preston-bernstein/friday-night-bytes/internal/timeutil"
)

// checkCommand is the root command's own behaviour: validate preferences, then run a check.
type checkCommand struct {
	env     Env
	verbose *bool

	sport    string
	nbaTeams string
	nflTeams string
	mlbTeams string
	date     string
	today    bool
	notify   bool
}

func newCheckCommand(env Env, verbose *bool) *checkCommand {
	return &checkCommand{env: env, verbose: verbose}
}

func (c *checkCommand) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&c.sport, "sport", "s", "", "favorite sport number (1 for NBA, 2 for NFL, 3 for MLB)")
	flags.StringVar(&c.nbaTeams, "nba-teams", "", "comma-separated NBA team abbreviations (e.g. lal,bos,mia)")
	flags.StringVar(&c.nflTeams, "nfl-teams", "", "comma-separated NFL team abbreviations (e.g. phi,kc,sf)")
	flags.StringVar(&c.mlbTeams, "mlb-teams", "", "comma-separated MLB team abbreviations (e.g. lad,nyy,bos)")
	flags.StringVar(&c.date, "date", "", "check a single date (YYYY-MM-DD) instead of the coming week")
	flags.BoolVar(&c.today, "today", false, "check today only instead of the coming week")
	flags.BoolVar(&c.notify, "notify", false, "send the summary through Pushover (printed when no credentials are set)")
	cmd.MarkFlagsMutuallyExclusive("date", "today")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return c.run(cmd.Context(), cmd.OutOrStdout())
	}
}

func (c *checkCommand) usingFlags() bool {
	return c.sport != "" || c.nbaTeams != "" || c.nflTeams != "" || c.mlbTeams != ""
}

func (c *checkCommand) run(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	reg := leagues.Default()

	var target *time.Time
	if c.date != "" {
		d, err := timeutil.ParseDate(strings.TrimSpace(c.date))
		if err != nil {
			return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", c.date)
		}
		target = &d
	}

	var prefs preferences.Preferences
	if c.usingFlags() {
		p, err := preferences.Parse(reg, c.sport, map[leagues.League]string{
			leagues.NBA: c.nbaTeams,
			leagues.NFL: c.nflTeams,
			leagues.MLB: c.mlbTeams,
		})
		switch {
		case errors.Is(err, preferences.ErrMultipleLeagues):
			printMultipleLeagues(out)
			return ErrUsage
		case err != nil:
			fmt.Fprintln(out, err)
			printCLIUsage(out, reg)
			return ErrUsage
		}
		prefs = p
		fmt.Fprintln(out, welcome)
		fmt.Fprintf(out, "Preferences: %s\n", describePreferences(prefs))
		if isLakerFan(prefs) {
			fmt.Fprintln(out, "\n"+lakerNation)
		}
	} else {
		fmt.Fprintln(out, welcome)
		p, ok, err := prompt(ctx, c.env.In, out, reg)
		if err != nil {
			fmt.Fprintln(out, interrupted)
			return nil
		}
		if !ok {
			return ErrUsage
		}
		prefs = p
		if isLakerFan(prefs) {
			fmt.Fprintln(out, lakerNation)
		}
	}

	return c.check(ctx, out, prefs, target)
}

func (c *checkCommand) check(ctx context.Context, out io.Writer, prefs preferences.Preferences, target *time.Time) error {
	cfg := c.env.LoadConfig()
	logger := c.env.logger(cfg, true, *c.verbose)
	app := c.env.Build(ctx, cfg, logger)
	defer func() {
		if err := app.Shutdown(context.Background()); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}()

	if c.notify && !cfg.Notify.Enabled() {
		logging.Warn(logger, "pushover credentials missing, printing the summary instead")
		app.Notifier = notify.NewWriterNotifier(out)
	}
	svc := app.Service(schedule.NewProgressPrinter(out), out)

	var (
		res checker.Result
		err error
	)
	switch {
	case target != nil:
		res, err = svc.Day(ctx, prefs, *target)
	case c.today:
		res, err = svc.Day(ctx, prefs, svc.Today())
	default:
		res, err = svc.Week(ctx, prefs)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, res.Report)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(out, interrupted)
		return nil
	}
	if err != nil {
		return err
	}
	if c.notify {
		return svc.Notify(ctx, res)
	}
	return nil
}
