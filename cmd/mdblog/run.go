package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	mdblog "github.com/alnah/go-mdblog"
	"github.com/alnah/go-mdblog/internal/build"
	"github.com/alnah/go-mdblog/internal/config"
	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/hints"
	"github.com/alnah/go-mdblog/internal/logging"
	"github.com/alnah/go-mdblog/internal/site"
	"github.com/alnah/go-mdblog/internal/theme"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags       = errors.New("invalid flags")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrResolveRoot        = errors.New("cannot resolve blog root")
)

// runMain runs the command and returns its exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'mdblog --help' for usage.")
		return exitCodeFor(err)
	}
	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "mdblog %s\n", Version)
		return ExitSuccess
	}

	logger := env.NewLogger(env.Stderr, logging.Level(flags.quiet, flags.verbose))
	defer func() { _ = logger.Sync() }()

	if env.SetMaxProcs != nil {
		env.SetMaxProcs(logger.Sugar().Debugf)
	}

	var themeDir string
	root, err := resolveRoot(flags.cwd, env)
	if err == nil {
		themeDir, err = runBuild(ctx, flags, root, env, logger)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, flags, root, themeDir))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runBuild loads the config, applies the flags and builds the site. It
// returns the resolved theme directory once the config is loaded.
func runBuild(ctx context.Context, flags *buildFlags, root string, env *Environment, logger *zap.Logger) (string, error) {
	if err := validateWorkers(flags.workers); err != nil {
		return "", err
	}

	cfg, err := loadConfig(root, flags.config, logger)
	if err != nil {
		return "", err
	}
	mergeFlags(flags, cfg)
	dirs := resolveDirs(root, cfg)

	b := build.New(cfg, build.Options{
		Dirs:     dirs,
		Dev:      flags.dev,
		Workers:  cfg.Build.Workers,
		FailFast: cfg.Build.FailFast,
		Clean:    !flags.noClean,
		Logger:   logger,
		Now:      env.Now,
	})

	report, err := b.Run(ctx)
	if report != nil {
		logger.Info("build finished",
			zap.Int("succeeded", report.Succeeded),
			zap.Int("failed", report.Failed),
			zap.Int("drafts", report.Drafts),
			zap.Int("pages", report.Pages),
			zap.Int("assets", report.Assets),
			zap.Duration("duration", report.Duration))
	}
	return dirs.Theme, err
}

// resolveRoot returns the absolute blog root: --cwd, or the working directory.
func resolveRoot(cwd string, env *Environment) (string, error) {
	if cwd == "" {
		wd, err := env.Getwd()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrResolveRoot, err)
		}
		cwd = wd
	}

	root, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResolveRoot, err)
	}
	if !fileutil.DirExists(root) {
		return "", fmt.Errorf("%w: %s is not a directory", ErrResolveRoot, root)
	}
	return root, nil
}

// loadConfig loads the named config. Without a name, blog.yaml is optional
// and its absence yields the default config.
func loadConfig(root, name string, logger *zap.Logger) (*config.Config, error) {
	if name != "" {
		cfg, err := config.LoadConfig(root, name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfig(root, config.DefaultConfigName)
	if errors.Is(err, config.ErrConfigNotFound) {
		logger.Debug("no config file, using defaults", zap.String("root", root))
		return config.DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.posts != "" {
		cfg.Dirs.Posts = flags.posts
	}
	if flags.spa != "" {
		cfg.Dirs.SPA = flags.spa
	}
	if flags.theme != "" {
		cfg.Dirs.Theme = flags.theme
	}
	if flags.dist != "" {
		cfg.Dirs.Dist = flags.dist
	}
	if flags.workers > 0 {
		cfg.Build.Workers = flags.workers
	}
	if flags.failFast {
		cfg.Build.FailFast = true
	}
}

// resolveDirs resolves the configured directories against root.
func resolveDirs(root string, cfg *config.Config) build.Dirs {
	return build.Dirs{
		Root:  root,
		Posts: config.ResolveDir(root, cfg.Dirs.Posts),
		SPA:   config.ResolveDir(root, cfg.Dirs.SPA),
		Theme: config.ResolveDir(root, cfg.Dirs.Theme),
		Dist:  config.ResolveDir(root, cfg.Dirs.Dist),
	}
}

// validateWorkers checks the --workers range.
func validateWorkers(n int) error {
	if n < 0 || n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, flags *buildFlags, root, themeDir string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(root)
	case errors.Is(err, config.ErrConfigParse):
		return hints.ForConfigParse()
	case errors.Is(err, build.ErrUnsafeDist):
		return hints.ForUnsafeDist()
	case errors.Is(err, build.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, site.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(pageTemplates(themeDir))
	case errors.Is(err, mdblog.ErrMissingFrontMatter), errors.Is(err, mdblog.ErrInvalidFrontMatter):
		return hints.ForFrontMatter()
	case errors.Is(err, build.ErrPostsFailed):
		return hints.ForPostsFailed(flags.verbose)
	}
	return ""
}

// pageTemplates lists the non-partial templates of the theme in dir, or of
// the embedded theme when dir does not exist.
func pageTemplates(dir string) []string {
	if !fileutil.DirExists(dir) {
		dir = ""
	}

	resolver, err := theme.NewResolver(dir)
	if err != nil {
		return nil
	}
	names, err := resolver.ListTemplates()
	if err != nil {
		return nil
	}

	pages := make([]string, 0, len(names))
	for _, name := range names {
		if !theme.IsPartial(name) {
			pages = append(pages, name)
		}
	}
	return pages
}
