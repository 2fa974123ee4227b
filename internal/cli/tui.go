package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/stigoleg/afk/internal/config"
	"github.com/stigoleg/afk/internal/pointer"
	"github.com/stigoleg/afk/internal/ui"
	"github.com/stigoleg/afk/internal/wander"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"
)

// Replaced in tests to run without a terminal.
var programOptions = []tea.ProgramOption{tea.WithAltScreen()}

// runTUI drives the generator from a second goroutine while the status screen
// owns the terminal. Quitting the screen cancels the generator.
func runTUI(ctx context.Context, cfg config.Config, mover pointer.Mover, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithoutSignalHandler()}, programOptions...)
	p := tea.NewProgram(ui.NewModel(cfg, mover.Name()), opts...)

	w := wander.New(mover, newRandom(), ui.NewTeaReporter(p), log.Named("wander"))

	errCh := make(chan error, 1)
	go func() {
		err := w.Run(ctx, wander.Fixed(cfg))
		p.Send(ui.StoppedMsg{Err: err})
		errCh <- err
	}()

	_, runErr := p.Run()
	killed := ctx.Err() != nil || errors.Is(runErr, tea.ErrProgramKilled)
	cancel()

	if err := <-errCh; err != nil {
		return err
	}
	if runErr != nil && !killed {
		return fmt.Errorf("running status screen: %w", runErr)
	}
	return nil
}
