package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryDevice:
		return g.generateDeviceSuggestions(affectedPath)
	case CategoryCommand:
		return g.generateCommandSuggestions(affectedPath)
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryDiskSpace:
		return g.generateDiskSpaceSuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryTransfer:
		return g.generateTransferSuggestions(affectedPath)
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateCommandSuggestions(_ string) []string {
	return []string{
		"Install the Android platform-tools and make sure 'adb' is on your PATH",
		"Pass the full executable path with --adb or --shell",
	}
}

func (g *suggestionGenerator) generateDeviceSuggestions(_ string) []string {
	return []string{
		"Connect the phone with a data-capable USB cable",
		"Enable USB debugging in the phone's developer options",
		"Accept the RSA fingerprint prompt on the phone, then run 'adb devices'",
		"Restart the bridge with 'adb kill-server' if the device stays offline",
	}
}

func (g *suggestionGenerator) generateDiskSpaceSuggestions(path string) []string {
	suggestions := []string{
		"Free up space on the destination",
	}

	if path != "" {
		suggestions = append(suggestions, "Check the free space of the filesystem containing "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"Verify the configured phone and PC paths exist and end with a separator",
		"Edit or delete the config file to enter the paths again",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read/write access to both the phone and PC directories",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'adb shell ls -ld %s'", path))
	}

	suggestions = append(suggestions, "App-private directories on the phone are not readable without root")

	return suggestions
}

func (g *suggestionGenerator) generateTransferSuggestions(_ string) []string {
	return []string{
		"Reconnect the cable and try the transfer again",
		"Avoid locking the phone screen while copying",
	}
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Run 'adb devices' to confirm the phone is still connected",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}
