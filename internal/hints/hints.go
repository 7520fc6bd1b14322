// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating blog.yaml in the blog root.
func ForConfigNotFound(root string) string {
	hint := "use --config /path/to/file.yaml"
	if root != "" {
		hint += " or create " + filepath.Join(root, "blog.yaml")
	}
	return format(hint)
}

// ForConfigParse returns a hint for config decoding errors.
func ForConfigParse() string {
	return format("keys are snake_case (blog_link, date_format); unknown keys are rejected")
}

// ForUnsafeDist returns a hint for an output directory that cannot be cleaned.
func ForUnsafeDist() string {
	return format("point --dist at a dedicated directory, or pass --no-clean")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound lists the templates a post may name.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForFrontMatter returns a hint for missing or invalid front matter.
func ForFrontMatter() string {
	return format("start the file with a --- block, e.g. title and create_time: 2024-01-02")
}

// ForPostsFailed returns hints for a build where some files failed.
func ForPostsFailed(verbose bool) string {
	hints := []string{"the failing files are logged above"}
	if !verbose {
		hints = append(hints, "use --verbose for details")
	}
	hints = append(hints, "use --fail-fast to stop at the first error")
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
