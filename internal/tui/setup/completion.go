package setup

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// hostCompletions returns the directories under the partial path input, each
// with a trailing separator so a picked entry is directly usable as a root.
func hostCompletions(input string) []string {
	input = expandHomePath(input)
	dir, prefix := parseCompletionPath(input)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	completions := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()

		if !entry.IsDir() || !shouldIncludeEntry(name, prefix) {
			continue
		}

		completions = append(completions, filepath.Join(dir, name)+string(filepath.Separator))
	}

	sort.Strings(completions)

	return completions
}

func expandHomePath(input string) string {
	if input == "" {
		return "." + string(filepath.Separator)
	}

	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, input[1:]) + trailingSeparator(input)
		}
	}

	return input
}

func trailingSeparator(input string) string {
	if strings.HasSuffix(input, string(filepath.Separator)) {
		return string(filepath.Separator)
	}

	return ""
}

func parseCompletionPath(input string) (dir, prefix string) {
	if strings.HasSuffix(input, string(filepath.Separator)) {
		return input, ""
	}

	return filepath.Dir(input), filepath.Base(input)
}

func shouldIncludeEntry(name, prefix string) bool {
	// Skip hidden directories unless asked for
	if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
		return false
	}

	return prefix == "" || strings.HasPrefix(name, prefix)
}
