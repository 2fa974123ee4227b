package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/stigoleg/afk/internal/config"
	"github.com/stigoleg/afk/internal/wander"
)

// Banner renders the startup title.
func Banner() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Current.Banner.Render("a f k"))
	b.WriteString("\n")
	b.WriteString(Current.Subtle.Render("A command-line program to make your mouse wander. ;)"))
	b.WriteString("\n\n")
	b.WriteString(Current.Help.Render("Press CTRL-C to exit."))
	b.WriteString("\n")
	return b.String()
}

// Options renders the effective configuration, one field per line.
func Options(cfg config.Config) string {
	lines := []string{
		fmt.Sprintf("debug:        %t", cfg.Debug),
		fmt.Sprintf("verbose:      %d", cfg.Verbosity),
		fmt.Sprintf("max-distance: %d", cfg.MaxDistance),
		fmt.Sprintf("min-distance: %d", cfg.MinDistance),
		fmt.Sprintf("max-delay:    %d", cfg.MaxDelay),
		fmt.Sprintf("min-delay:    %d", cfg.MinDelay),
	}
	if cfg.Duration != "" {
		lines = append(lines, fmt.Sprintf("duration:     %s", cfg.Duration))
	}
	if cfg.Until != "" {
		lines = append(lines, fmt.Sprintf("until:        %s", cfg.Until))
	}
	if cfg.Mover != "" {
		lines = append(lines, fmt.Sprintf("mover:        %s", cfg.Mover))
	}
	if cfg.DryRun {
		lines = append(lines, "dry-run:      true")
	}
	return Current.Title.Render("Options:") + "\n" + Current.Options.Render(strings.Join(lines, "\n")) + "\n"
}

// ConsoleReporter prints step reports as plain lines.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter returns a reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (r *ConsoleReporter) Moved(d wander.Displacement, _ int) {
	fmt.Fprintln(r.w, Current.Delta.Render(fmt.Sprintf("🐭 Mouse Delta (x, y): (%d, %d)", d.DX, d.DY)))
	fmt.Fprintln(r.w, Current.Subtle.Render(fmt.Sprintf("Traveled ~%d pixels.", d.Distance)))
}

func (r *ConsoleReporter) Waiting(d time.Duration, _ int) {
	fmt.Fprintln(r.w, Current.Wait.Render(fmt.Sprintf("Will move again in %d seconds.", int(d/time.Second))))
}

// Resumed separates verbose steps with a blank line once the pause is over.
func (r *ConsoleReporter) Resumed(verbosity int) {
	if verbosity > 0 {
		fmt.Fprintln(r.w)
	}
}
