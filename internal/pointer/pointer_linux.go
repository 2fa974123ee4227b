//go:build linux

package pointer

import (
	"errors"

	"github.com/stigoleg/afk/internal/pointer/linux"
	"go.uber.org/zap"
)

func newPlatformMover(name string, log *zap.Logger) (Mover, error) {
	m, err := linux.NewMover(name, log.Named("linux"))
	if err != nil {
		if errors.Is(err, linux.ErrNoBackend) {
			return nil, ErrUnsupported
		}
		return nil, err
	}
	return m, nil
}
