// Package setup asks for the phone and PC paths on first run.
package setup

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/savswap/internal/tui/shared"
)

// Screen collects the two root paths
type Screen struct {
	deviceInput     textinput.Model
	hostInput       textinput.Model
	focusIndex      int
	completions     []string
	completionIndex int
	showCompletions bool
	validationError string
	done            bool
	aborted         bool
}

// NewScreen creates a setup screen focused on the phone path
func NewScreen() Screen {
	deviceInput := textinput.New()
	deviceInput.Placeholder = "/sdcard/Android/data/<app>/files/"
	deviceInput.Focus()
	deviceInput.Prompt = shared.PromptArrow
	deviceInput.Width = shared.InputWidth

	hostInput := textinput.New()
	hostInput.Placeholder = `C:\Users\<you>\Saves\`
	hostInput.Prompt = "  "
	hostInput.Width = shared.InputWidth

	return Screen{
		deviceInput: deviceInput,
		hostInput:   hostInput,
	}
}

// Aborted reports whether the user left setup without finishing
func (s Screen) Aborted() bool {
	return s.aborted
}

// Done reports whether both paths were entered
func (s Screen) Done() bool {
	return s.done
}

// Paths returns the entered phone and PC paths
func (s Screen) Paths() (devicePath, hostPath string) {
	return strings.TrimSpace(s.deviceInput.Value()), strings.TrimSpace(s.hostInput.Value())
}

// Init implements tea.Model
func (s Screen) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (s Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return s.handleWindowSize(msg)
	case tea.KeyMsg:
		return s.handleKeyMsg(msg)
	}

	return s.updateFocused(msg)
}

// View implements tea.Model
func (s Screen) View() string {
	if s.done || s.aborted {
		return ""
	}

	return s.renderInputView()
}

func (s Screen) handleEnter() (tea.Model, tea.Cmd) {
	s.showCompletions = false
	devicePath, hostPath := s.Paths()

	if s.focusIndex == 0 {
		if devicePath == "" {
			s.validationError = "phone path must not be empty"
			return s, nil
		}

		return s.moveToNextField()
	}

	if hostPath == "" {
		s.validationError = "PC path must not be empty"
		return s, nil
	}

	s.done = true

	return s, tea.Quit
}

func (s Screen) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		s.aborted = true
		return s, tea.Quit
	case tea.KeyDown:
		return s.moveToNextField()
	case tea.KeyUp:
		return s.moveToPreviousField()
	case tea.KeyTab:
		return s.handleTabCompletion(), nil
	case tea.KeyShiftTab:
		return s.handleShiftTabCompletion(), nil
	case tea.KeyEnter:
		return s.handleEnter()
	}

	s.showCompletions = false
	s.validationError = ""

	return s.updateFocused(msg)
}

func (s Screen) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if s.focusIndex == 0 {
		s.deviceInput, cmd = s.deviceInput.Update(msg)
	} else {
		s.hostInput, cmd = s.hostInput.Update(msg)
	}

	return s, cmd
}

// ============================================================================
// Path Completion
// ============================================================================

// handleTabCompletion completes PC directories. Phone paths cannot be read
// locally, so Tab does nothing in the first field.
func (s Screen) handleTabCompletion() Screen {
	if s.focusIndex == 0 {
		return s
	}

	if !s.showCompletions {
		s.completions = hostCompletions(s.hostInput.Value())
		s.completionIndex = 0
		s.showCompletions = len(s.completions) > 0

		if len(s.completions) == 1 {
			s = s.applyCompletion(s.completions[0])
			s.showCompletions = false
		}

		return s
	}

	s.completionIndex = (s.completionIndex + 1) % len(s.completions)

	return s.applyCompletion(s.completions[s.completionIndex])
}

func (s Screen) handleShiftTabCompletion() Screen {
	if s.showCompletions && len(s.completions) > 0 {
		s.completionIndex--
		if s.completionIndex < 0 {
			s.completionIndex = len(s.completions) - 1
		}

		s = s.applyCompletion(s.completions[s.completionIndex])
	}

	return s
}

func (s Screen) applyCompletion(completion string) Screen {
	s.hostInput.SetValue(completion)
	s.hostInput.CursorEnd()

	return s
}

// ============================================================================
// Message Handlers
// ============================================================================

func (s Screen) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	const overhead = 10 // Box border, padding and prompt

	width := max(msg.Width-overhead, shared.DefaultPadding)
	s.deviceInput.Width = width
	s.hostInput.Width = width

	return s, nil
}

// ============================================================================
// Field Navigation
// ============================================================================

func (s Screen) moveToNextField() (tea.Model, tea.Cmd) {
	if s.focusIndex == 0 {
		s.focusIndex = 1
		s.deviceInput.Blur()
		s.deviceInput.Prompt = "  "
		s.hostInput.Focus()
		s.hostInput.Prompt = shared.PromptArrow
	}

	s.showCompletions = false
	s.validationError = ""

	return s, nil
}

func (s Screen) moveToPreviousField() (tea.Model, tea.Cmd) {
	if s.focusIndex == 1 {
		s.focusIndex = 0
		s.hostInput.Blur()
		s.hostInput.Prompt = "  "
		s.deviceInput.Focus()
		s.deviceInput.Prompt = shared.PromptArrow
	}

	s.showCompletions = false
	s.validationError = ""

	return s, nil
}

// ============================================================================
// Rendering
// ============================================================================

func (s Screen) renderInputView() string {
	content := shared.RenderTitle("First run: where are your files?") + "\n\n" +
		shared.RenderDim("Both paths are used as prefixes, so end each with its separator.") + "\n\n" +
		shared.RenderHighlight("Phone path:") + "\n" +
		s.deviceInput.View() + "\n\n" +
		shared.RenderHighlight("PC path:") + "\n" +
		s.hostInput.View() + "\n"

	if s.focusIndex == 1 && s.showCompletions {
		content += renderCompletions(s.completions, s.completionIndex) + "\n"
	}

	if s.validationError != "" {
		content += "\n" + shared.RenderError("Error: "+s.validationError) + "\n"
	}

	content += "\n" +
		shared.RenderDim("Enter to continue • Tab to complete PC folders • ↑↓ to switch fields • Esc to quit")

	return shared.RenderBox(content)
}

func renderCompletions(completions []string, current int) string {
	const maxShow = 8

	start := max(current-maxShow/2, 0) //nolint:mnd // Center the selection
	end := min(start+maxShow, len(completions))
	start = max(end-maxShow, 0)

	lines := make([]string, 0, end-start)

	for i := start; i < end; i++ {
		if i == current {
			lines = append(lines, shared.RenderHighlight("  "+shared.PromptArrow+completions[i]))
		} else {
			lines = append(lines, shared.RenderDim("    "+completions[i]))
		}
	}

	return strings.Join(lines, "\n")
}
