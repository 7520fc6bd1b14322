package mdblog

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-mdblog/internal/frontmatter"
	"github.com/alnah/go-mdblog/internal/linkrewrite"
	"github.com/alnah/go-mdblog/internal/pipeline"
	"github.com/alnah/go-mdblog/internal/textstat"
)

// Renderer turns Markdown documents into HTML fragments plus the metadata a
// blog page needs. Create with NewRenderer. A Renderer holds no per-document
// state and is safe for concurrent use.
type Renderer struct {
	cfg       rendererConfig
	converter *pipeline.GoldmarkConverter
}

// NewRenderer creates a Renderer. Without options it escapes code blocks,
// renders hard wraps, omits raw HTML and renders drafts.
func NewRenderer(opts ...Option) *Renderer {
	cfg := defaultRendererConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Renderer{
		cfg: cfg,
		converter: pipeline.NewGoldmarkConverter(pipeline.ConverterOptions{
			CodeBlock: cfg.codeBlock,
			Unsafe:    cfg.unsafe,
			HardWraps: cfg.hardWraps,
		}),
	}
}

// Render parses the front matter of in.Markdown, renders the body with links
// rewritten against the page route and fills in the reading time and
// abstract when the front matter does not supply them.
//
// Front matter errors match ErrMissingFrontMatter or ErrInvalidFrontMatter
// with errors.Is. Drafts yield ErrDraftExcluded when drafts are disabled.
func (r *Renderer) Render(ctx context.Context, in Input) (*RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	fm, body, err := frontmatter.Parse([]byte(in.Markdown), r.cfg.defaultLang)
	if err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}

	if fm.Draft && !r.cfg.drafts {
		return nil, ErrDraftExcluded
	}

	route := in.Route
	if fm.Pathname != "" {
		route = fm.Pathname
	}

	rw := linkrewrite.NewRewriter(route, in.SourceDir)
	html, err := r.converter.ToHTML(ctx, body, rw)
	if err != nil {
		return nil, err
	}

	result := &RenderResult{
		HTML:            html,
		FrontMatter:     fm,
		LocalAssetLinks: rw.Assets(),
		Route:           route,
		Duration:        fm.Duration,
		Description:     fm.Description,
	}
	r.derive(result)

	return result, nil
}

// derive fills the reading time and abstract from the rendered text.
func (r *Renderer) derive(result *RenderResult) {
	if result.Duration != "" && result.Description != "" {
		return
	}

	text := textstat.StripTags(result.HTML)
	result.Words = textstat.CountWords(text)

	if result.Duration == "" {
		minutes := textstat.ReadingTimeAt(result.Words, r.cfg.wordsPerMinute)
		result.Duration = textstat.FormatReadingTime(minutes)
	}
	if result.Description == "" {
		result.Description = textstat.AbstractAt(text, r.cfg.abstractLength)
	}
}
