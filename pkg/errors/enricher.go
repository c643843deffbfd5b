package errors

import (
	"errors"
	"regexp"
	"strings"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates a new Enricher with default pattern matcher and suggestion generator.
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

//nolint:gochecknoglobals // Compiled once and shared by every enricher
var pathExtractionPatterns = []*regexp.Regexp{
	// adb: error: failed to stat remote object '/sdcard/x.sav': No such file or directory
	// Cannot find path 'C:\saves' because it does not exist.
	regexp.MustCompile(`'([^']+)'`),
	// open /path/to/file: permission denied
	regexp.MustCompile(`\b\w+\s+([./][^\s:]+):`),
	// remove C:\saves\data: access denied
	regexp.MustCompile(`\b\w+\s+([A-Za-z]:\\[^\s:]+):`),
}

type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich categorises err and attaches suggestions. An error that is already
// actionable is returned unchanged. When affectedPath is empty a path is
// extracted from the message if one can be found.
func (e *enricher) Enrich(err error, affectedPath string) error {
	var actionableErr ActionableError
	if errors.As(err, &actionableErr) {
		return actionableErr
	}

	errMsg := strings.TrimSpace(err.Error())

	if affectedPath == "" {
		affectedPath = extractPath(errMsg)
	}

	category := e.matcher.Match(errMsg)

	return NewActionableError(
		errMsg,
		category,
		e.generator.Generate(category, affectedPath),
		affectedPath,
	)
}

func extractPath(errorMsg string) string {
	for _, pattern := range pathExtractionPatterns {
		if matches := pattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
			path := strings.TrimSpace(matches[1])
			if path != "" {
				return path
			}
		}
	}

	return ""
}
