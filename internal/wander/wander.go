// Package wander paces random pointer nudges: one bounded displacement, then one
// bounded pause, repeated until cancelled or until a step fails.
package wander

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stigoleg/afk/internal/config"
	"go.uber.org/zap"
)

// Mover applies a relative pointer offset.
type Mover interface {
	Move(dx, dy int) error
}

// Reporter surfaces step progress to the user.
type Reporter interface {
	// Moved is called after a successful move when verbosity is above zero.
	Moved(d Displacement, verbosity int)
	// Waiting is called with the pause drawn for the current step.
	Waiting(d time.Duration, verbosity int)
	// Resumed is called once a pause has run its full length.
	Resumed(verbosity int)
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// ConfigFunc yields the configuration for the next step.
type ConfigFunc func() config.Config

// Fixed returns a ConfigFunc that always yields cfg.
func Fixed(cfg config.Config) ConfigFunc {
	return func() config.Config { return cfg }
}

// Wanderer drives a Mover with samples from a Random.
type Wanderer struct {
	mover    Mover
	rnd      Random
	reporter Reporter
	sleep    SleepFunc
	log      *zap.Logger
}

// New returns a Wanderer. A nil reporter discards reports and a nil logger logs nothing.
func New(mover Mover, rnd Random, reporter Reporter, log *zap.Logger) *Wanderer {
	if reporter == nil {
		reporter = discard{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Wanderer{
		mover:    mover,
		rnd:      rnd,
		reporter: reporter,
		sleep:    Sleep,
		log:      log,
	}
}

// SetSleeper replaces the function used to pause between moves.
func (w *Wanderer) SetSleeper(fn SleepFunc) {
	w.sleep = fn
}

// Step performs one move and one pause.
func (w *Wanderer) Step(ctx context.Context, cfg config.Config) error {
	// Checked before sampling so a bad delay range never moves the pointer.
	if !cfg.DelayBoundsValid() {
		return ErrInvalidDelayBounds
	}
	if !cfg.DelayInRange() {
		return ErrDelayOutOfRange
	}

	d, err := Sample(cfg, w.rnd)
	if err != nil {
		return err
	}

	if d.Distance < 0 {
		w.log.Warn("negative distance drawn, moving by its magnitude",
			zap.Int("distance", d.Distance),
			zap.Int("min", cfg.MinDistance),
			zap.Int("max", cfg.MaxDistance),
		)
	}

	if err := w.mover.Move(d.DX, d.DY); err != nil {
		return fmt.Errorf("%w: %v", ErrMoveFailed, err)
	}

	if cfg.Verbosity > 0 {
		w.reporter.Moved(d, cfg.Verbosity)
	}

	pause := time.Duration(w.rnd.IntRange(cfg.MinDelay, cfg.MaxDelay)) * time.Second
	w.reporter.Waiting(pause, cfg.Verbosity)

	w.log.Debug("step",
		zap.Int("dx", d.DX),
		zap.Int("dy", d.DY),
		zap.Int("distance", d.Distance),
		zap.Duration("pause", pause),
	)

	if err := w.sleep(ctx, pause); err != nil {
		return err
	}
	w.reporter.Resumed(cfg.Verbosity)
	return nil
}

// Run calls Step until it fails or ctx is done. Cancellation takes effect between
// steps or during the pause and returns nil. Any other failure is returned as
// "<cause>. Exiting gracefully." wrapping the cause.
func (w *Wanderer) Run(ctx context.Context, next ConfigFunc) error {
	for {
		if ctx.Err() != nil {
			w.log.Info("stopped", zap.Error(context.Cause(ctx)))
			return nil
		}

		err := w.Step(ctx, next())
		if err == nil {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			w.log.Info("stopped", zap.Error(context.Cause(ctx)))
			return nil
		}

		w.log.Error("step failed", zap.Error(err))
		return fmt.Errorf("%w. Exiting gracefully.", err)
	}
}

// Sleep pauses for d, returning ctx.Err() if ctx is done first.
// Non-positive durations return immediately.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type discard struct{}

func (discard) Moved(Displacement, int)    {}
func (discard) Waiting(time.Duration, int) {}
func (discard) Resumed(int)                {}
