package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TUI represents the terminal user interface
type TUI struct {
	program *tea.Program
}

// NewTUI creates the interactive form. token pre-fills the hidden input and
// may be empty.
func NewTUI(factory Factory, token string, opts ...tea.ProgramOption) *TUI {
	model := NewModel(factory, token)
	return &TUI{
		program: tea.NewProgram(model, opts...),
	}
}

// Start runs the form until the user quits
func (t *TUI) Start() error {
	_, err := t.program.Run()
	return err
}

// Stop stops the TUI gracefully
func (t *TUI) Stop() {
	t.program.Quit()
}
