// Package cli wires configuration, logging, the pointer backend and the
// generator into the afk command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stigoleg/afk/internal/config"
	"github.com/stigoleg/afk/internal/lifecycle"
	"github.com/stigoleg/afk/internal/logging"
	"github.com/stigoleg/afk/internal/pointer"
	"github.com/stigoleg/afk/internal/ui"
	"github.com/stigoleg/afk/internal/util"
	"github.com/stigoleg/afk/internal/wander"
	"go.uber.org/zap"
)

// DefaultTUILogFile receives logs in --tui mode, where the screen belongs to the status view.
const DefaultTUILogFile = "afk.log"

// Replaced in tests.
var (
	newMover  = pointer.New
	newRandom = wander.NewRandom
	now       = time.Now
)

// NewRootCommand returns the afk command.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "afk",
		Short: "Make your mouse wander so you never look away.",
		Long: "afk nudges the pointer by a small random offset at random intervals,\n" +
			"keeping idle detection from locking the screen or marking you away.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(viper.New(), cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetVersionTemplate(`{{printf "afk %s\n" .Version}}`)
	config.BindFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logOpts := logging.Options{Debug: cfg.Debug, Console: stderr, File: cfg.LogFile}
	if cfg.TUI {
		logOpts.Console = nil
		if logOpts.File == "" {
			logOpts.File = DefaultTUILogFile
		}
		if cfg.Verbosity < 1 {
			cfg.Verbosity = 1
		}
	}
	log, closeLog := logging.New(logOpts)

	cleanup := lifecycle.NewCleanupManager(lifecycle.DefaultTimeout, log.Named("lifecycle"))
	cleanup.RegisterFunc("logger", closeLog)
	defer func() {
		err = errors.Join(err, cleanup.Execute())
	}()

	limit, err := runLimit(cfg, now())
	if err != nil {
		return err
	}
	if limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
		log.Info("stopping automatically", zap.Duration("after", limit))
	}

	name := cfg.Mover
	if cfg.DryRun {
		name = pointer.BackendDryRun
	}
	mover, err := newMover(name, log.Named("pointer"))
	if err != nil {
		return fmt.Errorf("selecting pointer backend: %w", err)
	}
	cleanup.RegisterFunc("pointer "+mover.Name(), mover.Close)

	if cfg.TUI {
		return runTUI(ctx, cfg, mover, log)
	}

	fmt.Fprint(stdout, ui.Banner())
	if cfg.Debug {
		fmt.Fprint(stdout, ui.Options(cfg))
	}
	fmt.Fprintln(stdout)

	w := wander.New(mover, newRandom(), ui.NewConsoleReporter(stdout), log.Named("wander"))
	return w.Run(ctx, wander.Fixed(cfg))
}

// runLimit returns how long the session may last, or zero for no limit.
// With both --duration and --until the earlier deadline wins.
func runLimit(cfg config.Config, at time.Time) (time.Duration, error) {
	var limit time.Duration
	if cfg.Duration != "" {
		d, err := util.ParseDuration(cfg.Duration)
		if err != nil {
			return 0, err
		}
		if d <= 0 {
			return 0, fmt.Errorf("duration must be positive, got %s", cfg.Duration)
		}
		limit = d
	}
	if cfg.Until != "" {
		d, err := util.UntilClock(cfg.Until, at)
		if err != nil {
			return 0, err
		}
		if limit == 0 || d < limit {
			limit = d
		}
	}
	return limit, nil
}
