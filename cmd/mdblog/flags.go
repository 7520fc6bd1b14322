package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// buildFlags holds the command-line flags.
type buildFlags struct {
	config   string
	cwd      string
	posts    string
	spa      string
	theme    string
	dist     string
	dev      bool
	workers  int
	failFast bool
	noClean  bool
	quiet    bool
	verbose  bool
	version  bool
	help     bool
}

// parseFlags parses args, which exclude the program name.
// Positional arguments are rejected.
func parseFlags(args []string) (*buildFlags, error) {
	fs := flag.NewFlagSet("mdblog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &buildFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.cwd, "cwd", "", "blog root directory")
	fs.StringVar(&f.posts, "posts", "", "posts directory")
	fs.StringVar(&f.spa, "spa", "", "standalone pages directory")
	fs.StringVar(&f.theme, "theme", "", "theme directory")
	fs.StringVar(&f.dist, "dist", "", "output directory")
	fs.BoolVar(&f.dev, "dev", false, "include drafts")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.failFast, "fail-fast", false, "stop at the first failing file")
	fs.BoolVar(&f.noClean, "no-clean", false, "keep the output directory")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments: %s", ErrInvalidFlags, strings.Join(fs.Args(), " "))
	}

	return f, nil
}
