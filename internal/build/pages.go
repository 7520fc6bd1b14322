package build

import (
	"bytes"
	"errors"
	"fmt"

	"go.uber.org/zap"

	mdblog "github.com/alnah/go-mdblog"
	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/site"
)

// highlightCSS is the stylesheet path written when highlighting is on.
const highlightCSS = "css/highlight.css"

// sitePage is a page rendered from the aggregated posts.
type sitePage struct {
	route    string
	template string
	model    site.HasBlogConfig
}

// writeSitePages writes the pages built from the aggregated posts: index,
// 404, tag pages, the feed and the highlight stylesheet.
func (b *Builder) writeSitePages(templates *site.Templates, posts []*site.Post) (int, error) {
	cfg := b.cfg
	tags := site.GroupByTag(posts)

	pages := []sitePage{
		{"/index.html", site.TemplateIndex, site.IndexModel{Base: site.NewBase(cfg, "", ""), Posts: posts, Tags: tags}},
		{"/404.html", site.TemplateNotFound, site.NotFoundModel{Base: site.NewBase(cfg, "404", "")}},
	}
	for _, tag := range tags {
		pages = append(pages, sitePage{site.TagRoute(tag.Name), site.TemplateTag, site.TagModel{
			Base:    site.NewBase(cfg, tag.Name, ""),
			TagName: tag.Name,
			Posts:   tag.Posts,
		}})
	}

	written := 0
	for _, p := range pages {
		html, err := templates.Execute(p.template, p.model)
		if err != nil {
			return written, err
		}
		if err := b.write(p.route, []byte(html)); err != nil {
			return written, err
		}
		written++
	}

	feed, err := site.BuildFeed(cfg, posts, b.now())
	switch {
	case errors.Is(err, site.ErrMissingBlogLink):
		b.logger.Warn("blog_link not set, skipping feed")
	case err != nil:
		return written, err
	default:
		if err := b.write("/"+site.FeedFile, []byte(feed)); err != nil {
			return written, err
		}
		written++
	}

	if style := cfg.Markdown.HighlightStyle; style != "" {
		var buf bytes.Buffer
		if err := mdblog.WriteHighlightCSS(&buf, style); err != nil {
			return written, err
		}
		if err := b.write("/"+highlightCSS, buf.Bytes()); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

// write writes data at route under the output directory. The route is
// cleaned as a rooted path so the file never lands outside it.
func (b *Builder) write(route string, data []byte) error {
	dst := outputPath(b.opts.Dirs.Dist, route)
	if err := fileutil.WriteFile(dst, data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	b.logger.Info("generated", zap.String("path", route))
	return nil
}
