package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stigoleg/afk/internal/config"
	"github.com/stigoleg/afk/internal/wander"

	tea "github.com/charmbracelet/bubbletea"
)

// MovedMsg reports a completed move.
type MovedMsg struct {
	Displacement wander.Displacement
}

// WaitingMsg reports the pause drawn after a move, starting at At.
type WaitingMsg struct {
	Pause time.Duration
	At    time.Time
}

// StoppedMsg reports that the generator returned. Err is nil after a clean stop.
type StoppedMsg struct {
	Err error
}

// tickMsg is sent when the countdown timer ticks
type tickMsg time.Time

// Model is the status screen state.
type Model struct {
	Config  config.Config
	Backend string

	Last     wander.Displacement
	Moves    int
	Pause    time.Duration
	PausedAt time.Time
	Now      time.Time

	Stopped      bool
	ErrorMessage string
	ShowHelp     bool

	keys     KeyMap
	help     help.Model
	progress progress.Model
	spinner  spinner.Model
}

// NewModel returns the status screen for a session using cfg and the named backend.
func NewModel(cfg config.Config, backend string) Model {
	return Model{
		Config:   cfg,
		Backend:  backend,
		Now:      time.Now(),
		keys:     DefaultKeys(),
		help:     NewHelpModel(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(40)),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(Current.Status)),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return Update(msg, m)
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// Remaining returns how long until the next move.
func (m Model) Remaining() time.Duration {
	if m.Stopped || m.Pause <= 0 {
		return 0
	}
	remaining := m.PausedAt.Add(m.Pause).Sub(m.Now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Progress returns the elapsed share of the current pause, in [0, 1].
func (m Model) Progress() float64 {
	if m.Pause <= 0 {
		return 0
	}
	p := 1 - float64(m.Remaining())/float64(m.Pause)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
