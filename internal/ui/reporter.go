package ui

import (
	"time"

	"github.com/stigoleg/afk/internal/wander"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// TeaReporter forwards step reports to the status screen.
type TeaReporter struct {
	sender Sender
	now    func() time.Time
}

// NewTeaReporter returns a reporter sending to s.
func NewTeaReporter(s Sender) *TeaReporter {
	return &TeaReporter{sender: s, now: time.Now}
}

func (r *TeaReporter) Moved(d wander.Displacement, _ int) {
	r.sender.Send(MovedMsg{Displacement: d})
}

func (r *TeaReporter) Waiting(d time.Duration, _ int) {
	r.sender.Send(WaitingMsg{Pause: d, At: r.now()})
}

// Resumed is a no-op; the countdown already shows the pause ending.
func (r *TeaReporter) Resumed(int) {}
