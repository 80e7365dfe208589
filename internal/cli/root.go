package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/friday-night-bytes/internal/app/wiring"
	"github.com/preston-bernstein/friday-night-bytes/internal/config"
	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
)

const (
	appName = "fnb"
	service = "friday-night-bytes"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// ErrUsage marks failures whose explanation has already been printed.
var ErrUsage = errors.New("invalid usage")

// Env holds the process resources commands read from and write to.
type Env struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// LoadConfig defaults to config.Load.
	LoadConfig func() config.Config
	// Build defaults to wiring.Build.
	Build func(ctx context.Context, cfg config.Config, logger *slog.Logger) *wiring.App
}

// DefaultEnv uses the standard streams and real configuration.
func DefaultEnv() Env {
	return Env{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

func (e Env) withDefaults() Env {
	if e.In == nil {
		e.In = os.Stdin
	}
	if e.Out == nil {
		e.Out = io.Discard
	}
	if e.Err == nil {
		e.Err = io.Discard
	}
	if e.LoadConfig == nil {
		e.LoadConfig = config.Load
	}
	if e.Build == nil {
		e.Build = wiring.Build
	}
	return e
}

// logger builds the command logger on stderr. Interactive checks stay quiet below warn unless verbose.
func (e Env) logger(cfg config.Config, quiet, verbose bool) *slog.Logger {
	level := cfg.Log.Level
	switch {
	case verbose:
		level = "debug"
	case quiet:
		level = "warn"
	}
	return logging.NewLogger(logging.Config{
		Level:   level,
		Format:  cfg.Log.Format,
		Service: service,
		Version: Version,
		Output:  e.Err,
	})
}

// NewRootCommand builds the fnb command tree.
func NewRootCommand(env Env) *cobra.Command {
	env = env.withDefaults()
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Friday Night Bytes CLI",
		Long: `Friday Night Bytes checks whether your favourite NBA, NFL or MLB teams play this week.

Run without flags for the interactive prompt, or pass a sport and its teams:
  fnb --sport 1 --nba-teams lal,bos
  fnb --sport 3 --mlb-teams lad,nyy --today`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	root.SetIn(env.In)
	root.SetOut(env.Out)
	root.SetErr(env.Err)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	check := newCheckCommand(env, &verbose)
	check.bind(root)

	root.AddCommand(
		newTeamsCommand(env),
		newServeCommand(env, &verbose),
		newWatchCommand(env, &verbose),
	)
	return root
}

// Execute runs the command tree against ctx.
func Execute(ctx context.Context, env Env) error {
	return NewRootCommand(env).ExecuteContext(ctx)
}
