package setup

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/savswap/internal/config"
)

// Prompter runs the setup screen as its own program. It satisfies
// config.Prompter.
type Prompter struct {
	Options []tea.ProgramOption
}

// NewPrompter creates a Prompter running with opts.
func NewPrompter(opts ...tea.ProgramOption) *Prompter {
	return &Prompter{Options: opts}
}

// PromptPaths implements config.Prompter.
func (p *Prompter) PromptPaths() (devicePath, hostPath string, err error) {
	final, err := tea.NewProgram(NewScreen(), p.Options...).Run()
	if err != nil {
		return "", "", fmt.Errorf("setup screen failed: %w", err)
	}

	screen, ok := final.(Screen)
	if !ok || !screen.Done() {
		return "", "", config.ErrSetupAborted
	}

	devicePath, hostPath = screen.Paths()

	return devicePath, hostPath, nil
}
