package build

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	mdblog "github.com/alnah/go-mdblog"
	"github.com/alnah/go-mdblog/internal/config"
	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/site"
	"github.com/alnah/go-mdblog/internal/theme"
)

// Dirs locates the inputs and output of a build. Paths should be absolute.
type Dirs struct {
	Root  string // Blog root, assets outside it are not copied
	Posts string
	SPA   string
	Theme string // Optional, the embedded theme is used when missing
	Dist  string
}

// Options configures a build.
type Options struct {
	Dirs     Dirs
	Dev      bool // Include drafts
	Workers  int  // 0 = ResolveWorkers default
	FailFast bool
	Clean    bool // Remove Dist before building
	Logger   *zap.Logger
	Now      func() time.Time
}

// Report summarizes a build.
type Report struct {
	Succeeded int
	Failed    int
	Drafts    int // Drafts skipped outside dev mode
	Assets    int // Assets copied
	Pages     int // Files generated, assets excluded
	Failures  []*FileError
	Duration  time.Duration
}

// Builder generates a site. Create with New.
type Builder struct {
	cfg      *config.Config
	opts     Options
	logger   *zap.Logger
	now      func() time.Time
	renderer *mdblog.Renderer
	workers  int
}

// New creates a Builder for cfg. A nil Logger discards logs and a nil Now
// uses time.Now.
func New(cfg *config.Config, opts Options) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Builder{
		cfg:      cfg,
		opts:     opts,
		logger:   logger,
		now:      now,
		renderer: mdblog.NewRenderer(rendererOptions(cfg, opts.Dev)...),
		workers:  ResolveWorkers(opts.Workers),
	}
}

// rendererOptions maps the site config onto renderer options.
func rendererOptions(cfg *config.Config, dev bool) []mdblog.Option {
	md := cfg.Markdown
	opts := []mdblog.Option{
		mdblog.WithUnsafeHTML(md.Unsafe),
		mdblog.WithHardWraps(md.HardWraps),
		mdblog.WithDefaultLang(cfg.Lang),
		mdblog.WithDrafts(dev),
		mdblog.WithAbstractLength(max(md.AbstractLength, 0)),
	}
	if md.WordsPerMinute > 0 {
		opts = append(opts, mdblog.WithWordsPerMinute(md.WordsPerMinute))
	}
	if md.HighlightStyle != "" {
		opts = append(opts, mdblog.WithHighlightStyle(md.HighlightStyle))
	}
	return opts
}

// Run builds the site. It returns a report together with ErrPostsFailed
// when some files failed, or the first FileError when FailFast is set.
// Cancelling ctx stops scheduling new files.
func (b *Builder) Run(ctx context.Context) (*Report, error) {
	start := b.now()
	dirs := b.opts.Dirs

	if b.opts.Clean {
		if err := checkDist(dirs.Dist, dirs.Root, dirs.Posts, dirs.SPA, dirs.Theme); err != nil {
			return nil, err
		}
		if err := removeDist(dirs.Dist); err != nil {
			return nil, err
		}
	}

	resolver, err := b.themeResolver()
	if err != nil {
		return nil, err
	}
	templates, err := site.LoadTemplates(resolver, b.cfg.DateFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadTemplate, err)
	}

	files, err := discoverFiles(defaultSources(dirs.Posts, dirs.SPA), b.logger)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("discovered sources", zap.Int("files", len(files)), zap.Int("workers", b.workers))

	results := b.renderAll(ctx, files, templates)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	red := b.reduce(results)
	report := &Report{
		Succeeded: red.succeeded,
		Failed:    len(red.failures),
		Drafts:    red.drafts,
		Pages:     red.succeeded,
		Failures:  red.failures,
	}

	if b.opts.FailFast && len(red.failures) > 0 {
		report.Duration = b.now().Sub(start)
		return report, red.failures[0]
	}

	copied, err := b.copyAssets(ctx, red.assets)
	if err != nil {
		return nil, err
	}
	report.Assets = copied

	pages, err := b.writeSitePages(templates, red.posts)
	if err != nil {
		return nil, err
	}
	report.Pages += pages

	static, err := b.writeStatic(resolver)
	if err != nil {
		return nil, err
	}
	report.Pages += static

	report.Duration = b.now().Sub(start)
	if report.Failed > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrPostsFailed, report.Failed, report.Failed+report.Succeeded)
	}
	return report, nil
}

// themeResolver uses the theme directory when it exists, the embedded theme
// otherwise.
func (b *Builder) themeResolver() (*theme.Resolver, error) {
	themeDir := b.opts.Dirs.Theme
	if themeDir != "" && !fileutil.DirExists(themeDir) {
		b.logger.Debug("theme directory not found, using default theme", zap.String("dir", themeDir))
		themeDir = ""
	}

	resolver, err := theme.NewResolver(themeDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadTemplate, err)
	}
	b.logger.Debug("theme loaded", zap.Bool("custom", resolver.HasCustomLoader()))
	return resolver, nil
}

// relRoute returns the site path of a file under dist for logging.
func (b *Builder) relRoute(path string) string {
	rel, err := filepath.Rel(b.opts.Dirs.Dist, path)
	if err != nil {
		return path
	}
	return "/" + filepath.ToSlash(rel)
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
