package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// Run plays loop on the local terminal through d. It returns when the player
// interrupts with ctrl+c, ctx is done, or the program fails. Signals are left
// to the caller, which cancels ctx.
func Run(ctx context.Context, d *Display, loop *game.Loop, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithoutSignalHandler()}, opts...)
	p := tea.NewProgram(d.Model(), opts...)

	progDone := make(chan error, 1)
	go func() {
		_, err := p.Run()
		d.Close()
		progDone <- err
	}()

	loopErr := loop.Run(ctx)
	d.Close()
	p.Quit()
	progErr := <-progDone

	if progErr != nil && !errors.Is(progErr, tea.ErrProgramKilled) {
		progErr = fmt.Errorf("tui: program: %w", progErr)
	} else {
		progErr = nil
	}
	return errors.Join(loopErr, progErr)
}
