package build

import (
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/alnah/go-mdblog/internal/linkrewrite"
	"github.com/alnah/go-mdblog/internal/site"
)

// assetCopy is one asset to copy into the output directory.
type assetCopy struct {
	Src string
	Dst string
}

// reduction is the aggregate of all file results.
type reduction struct {
	posts     []*site.Post // Posts using the post template, sorted
	assets    []assetCopy  // Deduplicated, in first-seen order
	failures  []*FileError
	succeeded int
	drafts    int
}

// reduce aggregates file results in discovery order. It runs after every
// worker finished and is the only place shared collections are built.
func (b *Builder) reduce(results []fileResult) reduction {
	var red reduction
	seenSrc := make(map[string]bool)
	seenDst := make(map[string]string)
	routes := make(map[string]string)

	for _, r := range results {
		switch {
		case r.draft:
			red.drafts++
			b.logger.Debug("skipped draft", zap.String("file", r.file.Path))
			continue
		case r.err != nil && isCancellation(r.err):
			continue
		case r.err != nil:
			fe := &FileError{Path: r.file.Path, Err: r.err}
			red.failures = append(red.failures, fe)
			b.logger.Error("failed", zap.String("file", r.file.Path), zap.Error(r.err))
			continue
		}

		red.succeeded++
		if prev, dup := routes[r.output]; dup {
			b.logger.Warn("files share an output path, last write wins",
				zap.String("path", b.relRoute(r.output)),
				zap.String("file", r.file.Path),
				zap.String("other", prev))
		}
		routes[r.output] = r.file.Path

		if r.post.TemplateName == site.TemplatePost {
			red.posts = append(red.posts, r.post)
		}

		for _, src := range r.assets {
			if seenSrc[src] {
				continue
			}
			seenSrc[src] = true

			dst, ok := b.assetDestination(r, src)
			if !ok {
				continue
			}
			if other, dup := seenDst[dst]; dup {
				b.logger.Warn("assets share a destination, skipping",
					zap.String("asset", src), zap.String("other", other))
				continue
			}
			seenDst[dst] = src
			red.assets = append(red.assets, assetCopy{Src: src, Dst: dst})
		}
	}

	site.SortPosts(red.posts)
	return red
}

// assetDestination places an asset at the URL its page links to: the
// asset's path relative to the source file, joined onto the page route's
// directory. Assets outside the blog root are skipped.
func (b *Builder) assetDestination(r fileResult, src string) (string, bool) {
	root := b.opts.Dirs.Root
	if root != "" && !isWithin(src, root) {
		b.logger.Warn("asset outside blog root, skipping",
			zap.String("asset", src), zap.String("file", r.file.Path))
		return "", false
	}

	rel, err := filepath.Rel(filepath.Dir(r.file.Path), src)
	if err != nil {
		b.logger.Warn("cannot resolve asset, skipping", zap.String("asset", src), zap.Error(err))
		return "", false
	}

	urlPath := path.Join(linkrewrite.RouteDir(r.route), filepath.ToSlash(rel))
	return filepath.Join(b.opts.Dirs.Dist, filepath.FromSlash(urlPath)), true
}
