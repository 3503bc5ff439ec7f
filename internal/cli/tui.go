package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func runTUI(ctx context.Context, a *App) error {
	if a.IsInteractive != nil && !a.IsInteractive() {
		return errNotInteractive
	}
	ctrl, err := a.newController(ctx, a.Config.Timer)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newAppModel(a, ctrl), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
