package ui

import (
	"fmt"
	"strings"
	"time"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("afk"))
	b.WriteString("\n\n")

	if m.Stopped {
		b.WriteString(Current.Subtle.Render("Stopped."))
	} else {
		b.WriteString(m.spinner.View() + " " + Current.Status.Render("Wandering") +
			Current.Subtle.Render(" via "+m.Backend))
	}
	b.WriteString("\n")

	b.WriteString(Current.Subtle.Render(fmt.Sprintf("distance %d-%d px • delay %d-%d s",
		m.Config.MinDistance, m.Config.MaxDistance, m.Config.MinDelay, m.Config.MaxDelay)))
	b.WriteString("\n\n")

	if m.Moves == 0 {
		b.WriteString(Current.Subtle.Render("Waiting for the first move..."))
		b.WriteString("\n")
	} else {
		b.WriteString(Current.Delta.Render(fmt.Sprintf("🐭 Mouse Delta (x, y): (%d, %d)", m.Last.DX, m.Last.DY)))
		b.WriteString("\n")
		b.WriteString(Current.Subtle.Render(fmt.Sprintf("Traveled ~%d pixels. Moves so far: %d", m.Last.Distance, m.Moves)))
		b.WriteString("\n")
	}

	if m.Pause > 0 && !m.Stopped {
		remaining := m.Remaining().Round(time.Second)
		b.WriteString("\n")
		b.WriteString(Current.Wait.Render(fmt.Sprintf("Next move in %s", remaining)))
		b.WriteString("\n")
		b.WriteString(m.progress.ViewAs(m.Progress()))
		b.WriteString("\n")
	}

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
