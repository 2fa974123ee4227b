package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"

	tea "github.com/charmbracelet/bubbletea"
)

// maxProgressWidth caps the countdown bar on wide terminals.
const maxProgressWidth = 60

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleHelp):
			m.ShowHelp = !m.ShowHelp
			m.help.ShowAll = m.ShowHelp
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		width := msg.Width - 4
		if width > maxProgressWidth {
			width = maxProgressWidth
		}
		if width > 0 {
			m.progress.Width = width
		}
		return m, nil

	case MovedMsg:
		m.Last = msg.Displacement
		m.Moves++
		return m, nil

	case WaitingMsg:
		m.Pause = msg.Pause
		m.PausedAt = msg.At
		m.Now = msg.At
		return m, nil

	case StoppedMsg:
		m.Stopped = true
		if msg.Err != nil {
			m.ErrorMessage = msg.Err.Error()
		}
		return m, tea.Quit

	case tickMsg:
		if m.Stopped {
			return m, nil
		}
		m.Now = time.Time(msg)
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}
