// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// ForNoInput returns hints when no template file matched the input patterns.
func ForNoInput(patterns []string) string {
	hint := "pass file paths or glob patterns, or set input.patterns in the config"
	if len(patterns) > 0 {
		hint = "no file matched " + strings.Join(patterns, ", ") + "; run from the project root or " + hint
	}
	return format(hint)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag, a user config location and the built-in presets.
func ForConfigNotFound(searchedPaths, presets []string) string {
	var hints []string

	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-mailicons") {
			hint += " or create " + p
			break
		}
	}
	hints = append(hints, hint)

	if len(presets) > 0 {
		hints = append(hints, "built-in configs: "+strings.Join(presets, ", "))
	}

	return formatHints(hints)
}

// ForTableNotFound returns hints for icon table not found errors.
func ForTableNotFound(available []string) string {
	if len(available) == 0 {
		return format("use --table /path/to/table.yaml")
	}
	return format("available: " + strings.Join(available, ", ") + "; or use --table /path/to/table.yaml")
}

// ForAssetPath returns hints for an unusable --asset-path directory.
func ForAssetPath() string {
	return format("--asset-path must be a directory containing tables/{name}.yaml")
}

// ForUnknownIcons returns hints when templates reference icons the table lacks.
func ForUnknownIcons(tableName string) string {
	return format("add the missing names to a custom copy of the " + tableName + " table, then run fetch")
}

// ForFetchFailure returns hints when every source failed for some icons.
// Mentions HTTPS_PROXY when it is set.
func ForFetchFailure() string {
	hints := []string{"check network access to the sources", "add a mirror with --source 'https://host/{name}.svg'"}
	if os.Getenv("HTTPS_PROXY") != "" || os.Getenv("https_proxy") != "" {
		hints = append(hints, "HTTPS_PROXY is set; verify the proxy allows the source hosts")
	}
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
