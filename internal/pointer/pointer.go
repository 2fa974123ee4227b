// Package pointer moves the system pointer by relative offsets.
package pointer

import (
	"errors"

	"go.uber.org/zap"
)

// Backend names accepted by New.
const (
	BackendAuto   = ""
	BackendDryRun = "dry-run"
)

// ErrUnsupported is returned when no backend can move the pointer on this system.
var ErrUnsupported = errors.New("unsupported platform")

// Mover applies a relative pointer offset.
type Mover interface {
	Move(dx, dy int) error
	Name() string
	Close() error
}

// New returns the backend called name, or the best available one when name is empty.
func New(name string, log *zap.Logger) (Mover, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if name == BackendDryRun {
		return NewDryRun(log), nil
	}

	m, err := newPlatformMover(name, log)
	if err != nil {
		return nil, err
	}
	log.Info("pointer backend selected", zap.String("backend", m.Name()))
	return m, nil
}

// DryRun logs moves instead of performing them.
type DryRun struct {
	log   *zap.Logger
	moves int
}

// NewDryRun returns a DryRun mover logging to log.
func NewDryRun(log *zap.Logger) *DryRun {
	return &DryRun{log: log}
}

func (d *DryRun) Move(dx, dy int) error {
	d.moves++
	d.log.Info("dry-run move", zap.Int("dx", dx), zap.Int("dy", dy), zap.Int("count", d.moves))
	return nil
}

func (d *DryRun) Name() string {
	return BackendDryRun
}

func (d *DryRun) Close() error {
	return nil
}

// Moves returns how many moves have been requested.
func (d *DryRun) Moves() int {
	return d.moves
}
