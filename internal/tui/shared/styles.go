package shared

import "github.com/charmbracelet/lipgloss"

// Exported constants organized by category for clarity.
const (
	// ============================================================================
	// Symbols
	// ============================================================================

	// PromptArrow is the arrow character used in prompts
	PromptArrow = "▶ "

	// ============================================================================
	// UI Layout & Display
	// ============================================================================

	// DefaultPadding is the default padding for UI elements
	DefaultPadding = 2
	// InputWidth is the width of the line input
	InputWidth = 60
)

func AccentColor() lipgloss.Color { return lipgloss.Color(accentColorCode) }

// ============================================================================
// Box and Container Styles
// ============================================================================

// BoxStyle returns the style for boxes with padding
func BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor()).
		Padding(1, DefaultPadding)
}

func DimColor() lipgloss.Color { return lipgloss.Color(dimColorCode) }

// DimStyle returns the style for dimmed text
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(DimColor())
}

// EmphasisStyle marks the word the confirmation question hinges on
func EmphasisStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ErrorColor()).
		Bold(true).
		Italic(true)
}

func ErrorColor() lipgloss.Color { return lipgloss.Color(errorColorCode) }

// ErrorStyle returns the style for error messages
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ErrorColor()).
		Bold(true)
}

// ErrorSymbol returns the cross shown before failures
func ErrorSymbol() string {
	return ErrorStyle().Render("✗")
}

func HighlightColor() lipgloss.Color { return lipgloss.Color(highlightColorCode) }

// HighlightStyle returns the style for file names and destinations
func HighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(HighlightColor()).
		Bold(true)
}

// MenuItemStyle returns the style for numbered menu entries
func MenuItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(NormalColor())
}

func NormalColor() lipgloss.Color { return lipgloss.Color(normalColorCode) }

// PromptStyle returns the style for the "Type selection" prompt
func PromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(AccentColor()).
		Bold(true)
}

// ============================================================================
// Helper Functions
// ============================================================================

// RenderBox renders content in a box with consistent styling
func RenderBox(content string) string {
	return BoxStyle().Render(content)
}

// RenderDim renders dimmed text with consistent styling
func RenderDim(text string) string {
	return DimStyle().Render(text)
}

// RenderEmphasis renders text with the emphasis style
func RenderEmphasis(text string) string {
	return EmphasisStyle().Render(text)
}

// RenderError renders an error message with consistent styling
func RenderError(text string) string {
	return ErrorStyle().Render(text)
}

// RenderHighlight renders a file name or destination
func RenderHighlight(text string) string {
	return HighlightStyle().Render(text)
}

// RenderMenuItem renders "[key] label"
func RenderMenuItem(key, label string) string {
	return MenuItemStyle().Render("[" + key + "] " + label)
}

// RenderSuccess renders a success message with consistent styling
func RenderSuccess(text string) string {
	return SuccessStyle().Render(text)
}

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle().Render(text)
}

func SuccessColor() lipgloss.Color { return lipgloss.Color(successColorCode) }

// SuccessStyle returns the style for success messages
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(SuccessColor()).
		Bold(true)
}

// SuccessSymbol returns the check mark shown before a finished copy
func SuccessSymbol() string {
	return SuccessStyle().Render("✓")
}

// ============================================================================
// Text Styles
// ============================================================================

// TitleStyle returns the style for menu headings
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(AccentColor())
}

// unexported constants.
const (
	accentColorCode    = "33"  // Blue
	dimColorCode       = "240" // Dark gray
	errorColorCode     = "196" // Red
	highlightColorCode = "226" // Yellow
	normalColorCode    = "252" // Light gray
	successColorCode   = "42"  // Green
)
