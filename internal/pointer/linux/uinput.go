//go:build linux

package linux

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// uinput constants.
const (
	uinputDevicePath = "/dev/uinput"
	uinputBusTypeUSB = 0x03
	uinputVendorID   = 0x1234
	uinputProductID  = 0x5678
	uinputDeviceName = "afk-pointer"

	// Linux input event types
	evSyn = 0x00
	evRel = 0x02
	relX  = 0x00
	relY  = 0x01

	// uinput ioctl commands
	uiSetEvbit   = 0x40045564 // _IOW('U', 100, int)
	uiSetRelbit  = 0x40045565 // _IOW('U', 101, int)
	uiDevCreate  = 0x5501     // _IO('U', 1)
	uiDevDestroy = 0x5502     // _IO('U', 2)
)

// Replaced in tests.
var ioctlSetInt = unix.IoctlSetInt

type uinputUserDev struct {
	name [80]byte
	id   struct {
		bustype uint16
		vendor  uint16
		product uint16
		version uint16
	}
	ffEffectsMax uint32
	absmax       [64]int32
	absmin       [64]int32
	absfuzz      [64]int32
	absflat      [64]int32
}

type inputEvent struct {
	time  unix.Timeval
	etype uint16
	code  uint16
	value int32
}

// UinputDevice is a virtual relative-motion mouse created through /dev/uinput.
type UinputDevice struct {
	file *os.File
	fd   int
}

// OpenUinput creates the virtual device. The caller must Close it.
func OpenUinput() (*UinputDevice, error) {
	f, err := os.OpenFile(uinputDevicePath, os.O_WRONLY|unix.O_NONBLOCK, 0o660)
	if err != nil {
		return nil, fmt.Errorf("failed to open uinput device: %w", err)
	}
	u := &UinputDevice{file: f, fd: int(f.Fd())}

	if err := u.enableRelativeAxes(); err != nil {
		u.Close()
		return nil, fmt.Errorf("failed to enable relative axes: %w", err)
	}

	if err := u.createDevice(); err != nil {
		u.Close()
		return nil, fmt.Errorf("failed to create uinput device: %w", err)
	}

	return u, nil
}

func (u *UinputDevice) enableRelativeAxes() error {
	if err := ioctlSetInt(u.fd, uiSetEvbit, evRel); err != nil {
		return err
	}
	if err := ioctlSetInt(u.fd, uiSetRelbit, relX); err != nil {
		return err
	}
	return ioctlSetInt(u.fd, uiSetRelbit, relY)
}

func (u *UinputDevice) createDevice() error {
	var dev uinputUserDev
	copy(dev.name[:], uinputDeviceName)
	dev.id.bustype = uinputBusTypeUSB
	dev.id.vendor = uinputVendorID
	dev.id.product = uinputProductID

	buf := unsafe.Slice((*byte)(unsafe.Pointer(&dev)), unsafe.Sizeof(dev))
	if _, err := unix.Write(u.fd, buf); err != nil {
		return err
	}
	return ioctlSetInt(u.fd, uiDevCreate, 0)
}

// Move emits one relative motion report followed by a sync event.
func (u *UinputDevice) Move(dx, dy int) error {
	events := []inputEvent{
		{etype: evRel, code: relX, value: int32(dx)},
		{etype: evRel, code: relY, value: int32(dy)},
		{etype: evSyn, code: 0, value: 0},
	}
	for i := range events {
		buf := unsafe.Slice((*byte)(unsafe.Pointer(&events[i])), unsafe.Sizeof(events[i]))
		if _, err := unix.Write(u.fd, buf); err != nil {
			return fmt.Errorf("uinput write: %w", err)
		}
	}
	return nil
}

func (u *UinputDevice) Name() string {
	return "uinput"
}

// Close destroys the virtual device.
func (u *UinputDevice) Close() error {
	if u.file == nil {
		return nil
	}
	var errs []error
	if err := ioctlSetInt(u.fd, uiDevDestroy, 0); err != nil {
		errs = append(errs, fmt.Errorf("failed to destroy uinput device: %w", err))
	}
	if err := u.file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close uinput device: %w", err))
	}
	u.file = nil
	u.fd = -1
	return errors.Join(errs...)
}
