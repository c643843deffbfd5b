// Package listing turns the raw output of a directory listing command into
// the ordered file names shown in the selection menu.
package listing

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Parse decodes stdout and splits it into one entry per line, preserving the
// order the external tool printed them in. Invalid UTF-8 is replaced with
// U+FFFD rather than rejected. Lines end at "\n" with an optional preceding
// "\r". Blank lines carry no file name and are skipped.
func Parse(stdout []byte) []string {
	text := Decode(stdout)
	if text == "" {
		return []string{}
	}

	lines := strings.Split(text, "\n")
	names := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		names = append(names, line)
	}

	return names
}

// Decode converts raw command output to text, substituting invalid byte
// sequences.
func Decode(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "�")
}

// Filter keeps only the names matching a glob pattern.
type Filter struct {
	pattern string
}

// NewFilter creates a Filter. An empty pattern keeps every name.
func NewFilter(pattern string) *Filter {
	return &Filter{pattern: pattern}
}

// Validate reports whether the pattern is well formed.
func (f *Filter) Validate() error {
	if f.pattern == "" {
		return nil
	}

	if !doublestar.ValidatePattern(f.pattern) {
		return fmt.Errorf("invalid filter pattern: %q", f.pattern)
	}

	return nil
}

// Apply returns the names that match the pattern, in their original order.
// Matching is case-insensitive.
func (f *Filter) Apply(names []string) []string {
	if f == nil || f.pattern == "" {
		return names
	}

	pattern := strings.ToLower(f.pattern)
	kept := make([]string, 0, len(names))

	for _, name := range names {
		matched, err := doublestar.Match(pattern, strings.ToLower(name))
		if err != nil || !matched {
			continue
		}

		kept = append(kept, name)
	}

	return kept
}
