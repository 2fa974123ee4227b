//go:build windows

package pointer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

const (
	inputMouse      = 0
	mouseeventfMove = 0x0001
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

type mouseInput struct {
	dx          int32
	dy          int32
	mouseData   uint32
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// input mirrors the Win32 INPUT struct with the MOUSEINPUT arm of the union.
type input struct {
	inputType uint32
	mi        mouseInput
}

type windowsMover struct {
	log *zap.Logger
}

func newPlatformMover(name string, log *zap.Logger) (Mover, error) {
	if name != BackendAuto && name != "sendinput" {
		return nil, fmt.Errorf("pointer backend %q is not available on Windows", name)
	}
	if err := procSendInput.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return &windowsMover{log: log.Named("windows")}, nil
}

func (m *windowsMover) Move(dx, dy int) error {
	in := input{
		inputType: inputMouse,
		mi: mouseInput{
			dx:      int32(dx),
			dy:      int32(dy),
			dwFlags: mouseeventfMove,
		},
	}

	n, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if n != 1 {
		return fmt.Errorf("SendInput: %w", err)
	}
	return nil
}

func (m *windowsMover) Name() string {
	return "sendinput"
}

func (m *windowsMover) Close() error {
	return nil
}
