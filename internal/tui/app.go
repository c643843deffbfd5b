// Package tui drives the transfer menus in the terminal.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection
)

// ProgramOptions returns the options for running on out. The alternate
// screen is only used when out is a terminal.
func ProgramOptions(out *os.File) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithOutput(out)}

	if term.IsTerminal(int(out.Fd())) {
		opts = append(opts, tea.WithAltScreen())
	}

	return opts
}

// Run runs model until the user exits. It returns the model's fatal error,
// if any, so the caller can report it and exit non-zero.
func Run(model *Model, opts ...tea.ProgramOption) error {
	program := tea.NewProgram(model, opts...)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	if m, ok := final.(*Model); ok && m.Fatal() != nil {
		return m.Fatal()
	}

	return nil
}
