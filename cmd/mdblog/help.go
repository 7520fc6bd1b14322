package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblog [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a static blog from Markdown posts.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Paths:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: blog)")
	fmt.Fprintln(w, "      --cwd <dir>           Blog root (default: current directory)")
	fmt.Fprintln(w, "      --posts <dir>         Posts directory (default: <cwd>/posts)")
	fmt.Fprintln(w, "      --spa <dir>           Standalone pages (default: <cwd>/spa)")
	fmt.Fprintln(w, "      --theme <dir>         Theme directory (default: <cwd>/theme)")
	fmt.Fprintln(w, "      --dist <dir>          Output directory (default: <cwd>/dist)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "      --dev                 Include drafts")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --fail-fast           Stop at the first failing file")
	fmt.Fprintln(w, "      --no-clean            Keep existing files in the output directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags override the config file, which overrides the defaults.")
}
