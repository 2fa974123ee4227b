//go:build darwin

package pointer

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/stigoleg/afk/internal/util"
	"go.uber.org/zap"
)

// scriptExecutionTimeout limits how long we wait for osascript. It protects
// against hangs when Accessibility is misconfigured.
const scriptExecutionTimeout = 3 * time.Second

// The script posts a real mouse-moved event so idle timers see activity.
const moveScript = `
ObjC.import('CoreGraphics');

var ev = $.CGEventCreate(null);
var p = $.CGEventGetLocation(ev);
var move = $.CGEventCreateMouseEvent(null, $.kCGEventMouseMoved, {x: p.x + %d, y: p.y + %d}, $.kCGMouseButtonLeft);
$.CGEventPost($.kCGHIDEventTap, move);

console.log("ok");
`

type darwinMover struct {
	log *zap.Logger
}

func newPlatformMover(name string, log *zap.Logger) (Mover, error) {
	if name != BackendAuto && name != "osascript" {
		return nil, fmt.Errorf("pointer backend %q is not available on macOS", name)
	}
	if !util.HasCommand("osascript") {
		return nil, ErrUnsupported
	}
	return &darwinMover{log: log.Named("darwin")}, nil
}

func (m *darwinMover) Move(dx, dy int) error {
	ctx, cancel := context.WithTimeout(context.Background(), scriptExecutionTimeout)
	defer cancel()

	script := fmt.Sprintf(moveScript, dx, dy)
	out, err := exec.CommandContext(ctx, "osascript", "-l", "JavaScript", "-e", script).CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("osascript timed out after %s", scriptExecutionTimeout)
	}
	if err != nil {
		m.log.Warn("mouse move blocked or failed; enable Accessibility for the terminal running afk in System Settings, Privacy and Security, Accessibility",
			zap.Error(err), zap.ByteString("output", out))
		return fmt.Errorf("osascript failed: %w (output: %q)", err, string(out))
	}
	return nil
}

func (m *darwinMover) Name() string {
	return "osascript"
}

func (m *darwinMover) Close() error {
	return nil
}
