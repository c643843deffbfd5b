package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/savswap/internal/navigator"
	"github.com/joe/savswap/internal/transfer"
	pkgerrors "github.com/joe/savswap/pkg/errors"
	"github.com/joe/savswap/pkg/gateway"
	"github.com/joe/savswap/pkg/listing"
)

// listingMsg carries the raw listing of the source side of direction.
type listingMsg struct {
	direction navigator.Direction
	result    gateway.Result
	err       error
}

// transferMsg carries the outcome of a copy.
type transferMsg struct {
	report transfer.Report
	err    error
}

// fetchListing lists the source side: the phone for DeviceToHost, the PC for
// HostToDevice.
func (m *Model) fetchListing(direction navigator.Direction) tea.Cmd {
	ctx := m.ctx
	lister := m.lister
	paths := m.paths

	return func() tea.Msg {
		var (
			result gateway.Result
			err    error
		)

		if direction == navigator.HostToDevice {
			result, err = lister.ListHost(ctx, paths.HostPath)
		} else {
			result, err = lister.ListDevice(ctx, paths.DevicePath)
		}

		return listingMsg{direction: direction, result: result, err: err}
	}
}

func (m *Model) runTransfer(file string, direction navigator.Direction) tea.Cmd {
	ctx := m.ctx
	transferer := m.transferer

	return func() tea.Msg {
		report, err := transferer.Transfer(ctx, file, direction)
		return transferMsg{report: report, err: err}
	}
}

// suggestionsFor enriches the text a failed command printed.
func suggestionsFor(result gateway.Result) string {
	diag := listing.Decode(result.Stderr)
	if diag == "" {
		diag = listing.Decode(result.Stdout)
	}

	if diag == "" {
		return ""
	}

	return pkgerrors.FormatSuggestions(pkgerrors.NewEnricher().Enrich(errors.New(diag), ""))
}
