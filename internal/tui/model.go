package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/joe/savswap/internal/config"
	"github.com/joe/savswap/internal/navigator"
	"github.com/joe/savswap/internal/transfer"
	"github.com/joe/savswap/internal/tui/shared"
	"github.com/joe/savswap/pkg/gateway"
	"github.com/joe/savswap/pkg/listing"
)

// InvalidNotice is shown after input that selects nothing.
const InvalidNotice = "Invalid input. Please enter a valid option."

// Lister fetches the raw directory listing of either side.
type Lister interface {
	ListDevice(ctx context.Context, devicePath string) (gateway.Result, error)
	ListHost(ctx context.Context, hostPath string) (gateway.Result, error)
}

// Transferer copies one file.
type Transferer interface {
	Transfer(ctx context.Context, file string, direction navigator.Direction) (transfer.Report, error)
}

// Options are the collaborators of a Model.
type Options struct {
	Lister     Lister
	Transferer Transferer
	Paths      config.Paths
	// Filter narrows listings; nil keeps every name.
	Filter *listing.Filter
	Logger zerolog.Logger
}

// Model is the interactive menu loop. It owns the navigation state and hands
// external commands to bubbletea as commands, accepting no submission while
// one is running.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	lister     Lister
	transferer Transferer
	paths      config.Paths
	filter     *listing.Filter
	logger     zerolog.Logger

	state   navigator.State
	input   textinput.Model
	spinner spinner.Model

	notice  string
	report  *transfer.Report
	failure *shared.Failure

	busy     bool
	quitting bool
	fatal    error
}

// NewModel creates a Model at the direction menu. Cancelling ctx, or pressing
// Ctrl+C, interrupts a running command.
func NewModel(ctx context.Context, opts Options) *Model {
	ctx, cancel := context.WithCancel(ctx)

	input := textinput.New()
	input.Prompt = "Type selection: "
	input.PromptStyle = shared.PromptStyle()
	input.Width = shared.InputWidth
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = shared.DimStyle()

	return &Model{
		ctx:        ctx,
		cancel:     cancel,
		lister:     opts.Lister,
		transferer: opts.Transferer,
		paths:      opts.Paths,
		filter:     opts.Filter,
		logger:     opts.Logger,
		state:      navigator.Initial(),
		input:      input,
		spinner:    spin,
	}
}

// Busy reports whether an external command is running.
func (m *Model) Busy() bool {
	return m.busy
}

// Fatal returns the error that ended the program, if any.
func (m *Model) Fatal() error {
	return m.fatal
}

// Notice returns the current invalid-input notice.
func (m *Model) Notice() string {
	return m.notice
}

// Quitting reports whether the model has asked bubbletea to quit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// State returns the navigation state (for testing)
func (m *Model) State() navigator.State {
	return m.state
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, shared.DefaultPadding)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case listingMsg:
		return m.handleListing(msg)
	case transferMsg:
		return m.handleTransfer(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.logger.Debug().Msg("interrupted")
		m.cancel()
		m.quitting = true

		return m, tea.Quit
	case tea.KeyEnter:
		if m.busy {
			return m, nil
		}

		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// submit feeds the typed line to the state machine and starts whatever
// command the transition asks for.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	out := navigator.Step(m.state, line)

	m.notice = ""
	m.report = nil
	m.failure = nil

	if out.Invalid {
		m.logger.Debug().Str("level", m.state.Level.String()).Str("input", line).Msg("invalid input")
		m.notice = InvalidNotice

		return m, nil
	}

	m.state = out.State

	switch out.Action {
	case navigator.ActionNone:
		return m, nil
	case navigator.ActionExit:
		m.cancel()
		m.quitting = true

		return m, tea.Quit
	case navigator.ActionFetchListing:
		m.busy = true
		return m, m.fetchListing(out.Direction)
	case navigator.ActionTransfer:
		m.busy = true
		return m, m.runTransfer(out.File, out.Direction)
	}

	return m, nil
}

func (m *Model) handleListing(msg listingMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.err != nil {
		return m.fail(msg.err)
	}

	if !msg.result.Success {
		m.state = navigator.Initial()
		m.failure = &shared.Failure{
			Title:       "Failed to list files for " + msg.direction.String(),
			Output:      listing.Decode(msg.result.Stdout),
			Diagnostic:  listing.Decode(msg.result.Stderr),
			Suggestions: suggestionsFor(msg.result),
		}

		return m, nil
	}

	names := listing.Parse(msg.result.Stdout)
	if m.filter != nil {
		names = m.filter.Apply(names)
	}

	m.logger.Debug().Str("direction", msg.direction.String()).Int("files", len(names)).Msg("listing loaded")
	m.state = navigator.Loaded(msg.direction, names)

	return m, nil
}

func (m *Model) handleTransfer(msg transferMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.err != nil {
		return m.fail(msg.err)
	}

	report := msg.report
	m.report = &report

	return m, nil
}

// fail records an error no menu choice can recover from and quits.
func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.logger.Error().Err(err).Msg("fatal")
	m.fatal = err
	m.quitting = true
	m.cancel()

	return m, tea.Quit
}
