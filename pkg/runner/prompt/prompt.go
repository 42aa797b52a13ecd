package prompt

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/ambit/pkg/store"
	promptui "tableflip.dev/ambit/pkg/tui/prompt"
)

// Prompt runs the interactive session until the user quits.
type Prompt struct {
	Persistence store.Persistence
}

func (p *Prompt) Do(ctx context.Context) error {
	st, err := p.Persistence.Load(ctx)
	if err != nil {
		return err
	}

	program := tea.NewProgram(promptui.New(st, p.Persistence), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
