//go:build linux

package linux

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// Backend names.
const (
	BackendUinput  = "uinput"
	BackendYdotool = "ydotool"
	BackendXdotool = "xdotool"
)

// ErrNoBackend is returned when neither uinput nor a command-line tool is usable.
var ErrNoBackend = errors.New("no pointer backend available (need /dev/uinput access, ydotool, or xdotool on X11)")

// Mover is a Linux pointer backend.
type Mover interface {
	Move(dx, dy int) error
	Name() string
	Close() error
}

// CommandMover moves the pointer by running a command-line tool.
type CommandMover struct {
	Cmd  string
	Args func(dx, dy int) []string
}

// NewXdotoolMover returns a CommandMover driving xdotool (X11 only).
func NewXdotoolMover() *CommandMover {
	return &CommandMover{
		Cmd: BackendXdotool,
		Args: func(dx, dy int) []string {
			// "--" keeps negative offsets from being read as flags.
			return []string{"mousemove_relative", "--", strconv.Itoa(dx), strconv.Itoa(dy)}
		},
	}
}

// NewYdotoolMover returns a CommandMover driving ydotool (X11 and Wayland).
func NewYdotoolMover() *CommandMover {
	return &CommandMover{
		Cmd: BackendYdotool,
		Args: func(dx, dy int) []string {
			return []string{"mousemove", "-x", strconv.Itoa(dx), "-y", strconv.Itoa(dy)}
		},
	}
}

func (c *CommandMover) Move(dx, dy int) error {
	out, err := runVerbose(c.Cmd, c.Args(dx, dy)...)
	if err != nil {
		return fmt.Errorf("%s: %w (output: %q)", c.Cmd, err, out)
	}
	return nil
}

func (c *CommandMover) Name() string {
	return c.Cmd
}

func (c *CommandMover) Close() error {
	return nil
}

// NewMover returns the backend called name, or the first usable one of uinput,
// ydotool and xdotool when name is empty.
func NewMover(name string, log *zap.Logger) (Mover, error) {
	caps := DetectCapabilities()
	log.Debug("capabilities",
		zap.String("display_server", caps.DisplayServer),
		zap.Bool("xdotool", caps.XdotoolAvailable),
		zap.Bool("ydotool", caps.YdotoolAvailable),
	)

	switch name {
	case BackendUinput:
		dev, err := OpenUinput()
		if err != nil {
			return nil, err
		}
		return dev, nil
	case BackendYdotool:
		if !caps.YdotoolAvailable {
			return nil, fmt.Errorf("ydotool not found in PATH")
		}
		return NewYdotoolMover(), nil
	case BackendXdotool:
		if !caps.XdotoolAvailable {
			return nil, fmt.Errorf("xdotool not found in PATH")
		}
		return NewXdotoolMover(), nil
	case "":
	default:
		return nil, fmt.Errorf("unknown pointer backend %q", name)
	}

	dev, err := OpenUinput()
	if err == nil {
		return dev, nil
	}
	log.Info("uinput unavailable; trying command-line tools", zap.Error(err))

	if caps.YdotoolAvailable {
		return NewYdotoolMover(), nil
	}
	// xdotool cannot reach Wayland-native windows.
	if caps.XdotoolAvailable && caps.DisplayServer == DisplayServerX11 {
		return NewXdotoolMover(), nil
	}
	return nil, ErrNoBackend
}
