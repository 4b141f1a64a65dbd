package session

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/assistant/internal/tui"
)

// TUISession runs the Bubble Tea front end.
type TUISession struct {
	handler Handler
	in      io.Reader
	out     io.Writer
	prompt  string
}

// Run blocks until the TUI quits.
func (s *TUISession) Run(ctx context.Context) error {
	model := tui.NewModel(s.handler, tui.WithPrompt(s.prompt))
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("session: tui: %w", err)
	}
	return nil
}
