// Package ui renders afk's terminal output: the banner, per-step reports and the
// interactive status screen.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used in the application
type Style struct {
	Title   lipgloss.Style
	Banner  lipgloss.Style
	Delta   lipgloss.Style
	Wait    lipgloss.Style
	Subtle  lipgloss.Style
	Status  lipgloss.Style
	Help    lipgloss.Style
	Error   lipgloss.Style
	Options lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle()

	return Style{
		Title: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Banner: base.
			Bold(true).
			Foreground(defaultColors.Highlight).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight).
			Padding(0, 3),

		Delta: base.
			Foreground(defaultColors.Special),

		Wait: base.
			Foreground(defaultColors.Highlight),

		Subtle: base.
			Foreground(defaultColors.Subtle),

		Status: base.
			Bold(true).
			Foreground(defaultColors.Special),

		Help: base.
			Foreground(defaultColors.Subtle),

		Error: base.
			Foreground(defaultColors.Error),

		Options: base.
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(defaultColors.Subtle).
			PaddingLeft(1),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
