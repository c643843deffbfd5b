package shared

import (
	"fmt"
	"strings"
)

// Failure is a failed external command as shown to the user.
type Failure struct {
	// Title is the headline, e.g. "Failed to copy a.sav".
	Title string
	// Output is the command's standard output.
	Output string
	// Diagnostic is the command's standard error.
	Diagnostic string
	// Suggestions is a formatted list from the diagnostics enricher.
	Suggestions string
}

// RenderFailure renders a failure headline followed by the command output,
// the diagnostic and the suggestions. Empty parts are left out.
func RenderFailure(failure Failure) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "%s %s\n", ErrorSymbol(), RenderError(failure.Title))

	if out := strings.TrimRight(failure.Output, "\n"); out != "" {
		fmt.Fprintf(&builder, "%s\n", RenderError(out))
	}

	if diag := strings.TrimRight(failure.Diagnostic, "\n"); diag != "" {
		fmt.Fprintf(&builder, "%s\n", RenderDim(diag))
	}

	if failure.Suggestions != "" {
		fmt.Fprintf(&builder, "%s\n", failure.Suggestions)
	}

	return builder.String()
}
