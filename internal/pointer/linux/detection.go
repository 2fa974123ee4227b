//go:build linux

// Package linux provides the Linux pointer backends.
package linux

import "os"

// Display server types.
const (
	DisplayServerWayland = "wayland"
	DisplayServerX11     = "x11"
	DisplayServerUnknown = "unknown"
)

// Capabilities tracks which pointer tools are usable on this system.
type Capabilities struct {
	XdotoolAvailable bool
	YdotoolAvailable bool
	DisplayServer    string
}

// DetectCapabilities detects available tools and the display server.
func DetectCapabilities() Capabilities {
	return Capabilities{
		XdotoolAvailable: hasCommand("xdotool"),
		YdotoolAvailable: hasCommand("ydotool"),
		DisplayServer:    DetectDisplayServer(),
	}
}

// DetectDisplayServer detects whether running on Wayland or X11.
func DetectDisplayServer() string {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return DisplayServerWayland
	}
	if os.Getenv("XDG_SESSION_TYPE") == DisplayServerWayland {
		return DisplayServerWayland
	}
	if os.Getenv("DISPLAY") != "" {
		return DisplayServerX11
	}
	if os.Getenv("XDG_SESSION_TYPE") == DisplayServerX11 {
		return DisplayServerX11
	}
	return DisplayServerUnknown
}
