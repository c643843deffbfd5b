package tui

import (
	"strconv"
	"strings"

	"github.com/joe/savswap/internal/navigator"
	"github.com/joe/savswap/internal/transfer"
	"github.com/joe/savswap/internal/tui/shared"
)

// View implements tea.Model
func (m *Model) View() string {
	// Leave a clean terminal behind on exit.
	if m.quitting {
		return ""
	}

	var builder strings.Builder

	if m.report != nil {
		builder.WriteString(renderReport(*m.report))
		builder.WriteString("\n")
	}

	if m.failure != nil {
		builder.WriteString(shared.RenderFailure(*m.failure))
		builder.WriteString("\n")
	}

	if m.notice != "" {
		builder.WriteString(shared.RenderError(m.notice))
		builder.WriteString("\n\n")
	}

	builder.WriteString(renderMenu(m.state))
	builder.WriteString("\n")
	builder.WriteString(m.input.View())
	builder.WriteString("\n")

	if m.busy {
		builder.WriteString("\n" + m.spinner.View() + shared.RenderDim("Working…") + "\n")
	}

	return builder.String()
}

func renderMenu(state navigator.State) string {
	switch state.Level {
	case navigator.LevelFileSelect:
		return renderFileMenu(state.Listing)
	case navigator.LevelConfirm:
		return renderConfirmMenu(state.Selected, state.Direction)
	case navigator.LevelDirection:
		return renderDirectionMenu()
	default:
		return renderDirectionMenu()
	}
}

func renderDirectionMenu() string {
	lines := []string{
		shared.RenderTitle("Select Source -> Destination."),
		shared.RenderMenuItem("1", navigator.DeviceToHost.String()),
		shared.RenderMenuItem("2", navigator.HostToDevice.String()),
		shared.RenderMenuItem("0", "Exit"),
	}

	return strings.Join(lines, "\n") + "\n"
}

func renderFileMenu(names []string) string {
	lines := make([]string, 0, len(names)+3) //nolint:mnd // Title, empty notice and Back
	lines = append(lines, shared.RenderTitle("Select file to copy."))

	if len(names) == 0 {
		lines = append(lines, shared.RenderDim("No files found."))
	}

	for i, name := range names {
		lines = append(lines, shared.RenderMenuItem(strconv.Itoa(i+1), name))
	}

	lines = append(lines, shared.RenderMenuItem("0", "Back"))

	return strings.Join(lines, "\n") + "\n"
}

func renderConfirmMenu(file string, direction navigator.Direction) string {
	question := "Are you " + shared.RenderEmphasis("sure") +
		" you want to copy file " + shared.RenderHighlight(file) +
		" to " + shared.RenderHighlight(direction.Label()) + "?"

	lines := []string{
		question,
		shared.RenderMenuItem("1", "Yes"),
		shared.RenderMenuItem("2", "No"),
	}

	return strings.Join(lines, "\n") + "\n"
}

func renderReport(report transfer.Report) string {
	if !report.Success {
		return shared.RenderFailure(shared.Failure{
			Title:       "Failed to copy " + report.File + " to " + report.Direction.Label(),
			Output:      report.Output,
			Diagnostic:  report.Diagnostic,
			Suggestions: report.Suggestions,
		})
	}

	var builder strings.Builder

	builder.WriteString(shared.SuccessSymbol() + " " +
		shared.RenderSuccess("Copied "+report.File+" to "+report.Direction.Label()) + "\n")

	if out := strings.TrimRight(report.Output, "\n"); out != "" {
		builder.WriteString(shared.RenderSuccess(out) + "\n")
	}

	// adb prints its transfer summary on stderr even when the copy worked.
	if diag := strings.TrimRight(report.Diagnostic, "\n"); diag != "" {
		builder.WriteString(shared.RenderDim(diag) + "\n")
	}

	return builder.String()
}
