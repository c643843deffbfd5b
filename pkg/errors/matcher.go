package errors

import "strings"

// PatternMatcher matches diagnostic messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with the bridge and shell
// patterns. Rules are checked in order, so a message mentioning both a
// missing device and a missing path is reported as a device problem.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		rules: []categoryRule{
			{CategoryDevice, []string{
				"no devices/emulators found",
				"device offline",
				"device unauthorized",
				"unauthorized",
				"device not found",
				"more than one device",
			}},
			{CategoryCommand, []string{
				"executable file not found",
				"is not recognized as",
				"command not found",
				"inaccessible or not found",
			}},
			{CategoryPermission, []string{
				"permission denied",
				"access denied",
				"access to the path",
				"operation not permitted",
				"read-only file system",
			}},
			{CategoryDiskSpace, []string{
				"no space left on device",
				"disk full",
				"quota exceeded",
				"not enough space",
			}},
			{CategoryPath, []string{
				"no such file or directory",
				"failed to stat",
				"cannot find path",
				"does not exist",
			}},
			{CategoryTransfer, []string{
				"protocol fault",
				"remote write failed",
				"connection reset",
				"short write",
			}},
		},
	}
}

type categoryRule struct {
	category ErrorCategory
	patterns []string
}

type patternMatcher struct {
	rules []categoryRule
}

// Match returns the first category whose patterns appear in errorMsg,
// ignoring case.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, rule := range m.rules {
		for _, pattern := range rule.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return rule.category
			}
		}
	}

	return CategoryUnknown
}
