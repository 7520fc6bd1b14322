package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdblog/internal/linkrewrite"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// ConverterOptions configures the goldmark engine.
type ConverterOptions struct {
	CodeBlock CodeBlockRenderer // nil means EscapeCodeBlock
	Unsafe    bool              // Pass raw HTML through
	HardWraps bool              // Treat newlines as <br>
}

// GoldmarkConverter converts Markdown bodies to HTML fragments. It is safe
// for concurrent use.
type GoldmarkConverter struct {
	md     goldmark.Markdown
	unsafe bool
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM, footnotes,
// definition lists and link rewriting.
func NewGoldmarkConverter(opts ConverterOptions) *GoldmarkConverter {
	rendererOpts := []renderer.Option{
		html.WithXHTML(), // Self-closing tags
		renderer.WithNodeRenderers(
			util.Prioritized(newCodeBlockNodeRenderer(opts.CodeBlock), 100),
		),
	}
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,            // Tables, strikethrough, autolinks, task lists
			extension.Footnote,       // [^1] footnotes
			extension.DefinitionList, // Term / : definition
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings
			parser.WithAttribute(),     // {#id .class} on headings
			parser.WithASTTransformers(
				util.Prioritized(linkrewrite.Transformer{}, 100),
			),
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md, unsafe: opts.Unsafe}
}

// ToHTML converts a Markdown body to an HTML fragment, passing every link
// through rw. When raw HTML is enabled, links inside it are rewritten too.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, body []byte, rw *linkrewrite.Rewriter) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		doc := c.md.Parser().Parse(text.NewReader(body), parser.WithContext(linkrewrite.NewContext(rw)))

		var buf bytes.Buffer
		if err := c.md.Renderer().Render(&buf, body, doc); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}

		out := buf.String()
		if c.unsafe {
			rewritten, err := linkrewrite.RewriteHTML(out, rw)
			if err != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
				return
			}
			out = rewritten
		}
		done <- result{html: out}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
