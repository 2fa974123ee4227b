//go:build !darwin && !linux && !windows

package pointer

import "go.uber.org/zap"

func newPlatformMover(name string, log *zap.Logger) (Mover, error) {
	return nil, ErrUnsupported
}
