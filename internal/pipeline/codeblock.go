package pipeline

import (
	"html"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// CodeBlockRenderer renders one fenced code block. lang is the first word of
// the info string (may be empty) and lines holds the block content without
// line terminators. The returned string is written to the page verbatim.
type CodeBlockRenderer func(lang string, lines []string) string

// PlainTextLang names code blocks without a language.
const PlainTextLang = "plaintext"

var codeEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeCodeBlock emits the block as escaped text inside
// <pre><code class="language-LANG">.
func EscapeCodeBlock(lang string, lines []string) string {
	if lang == "" {
		lang = PlainTextLang
	}

	var sb strings.Builder
	sb.WriteString(`<pre><code class="language-`)
	sb.WriteString(html.EscapeString(lang))
	sb.WriteString(`">`)
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(codeEscaper.Replace(line))
	}
	sb.WriteString("</code></pre>")
	return sb.String()
}

// codeBlockNodeRenderer routes goldmark fenced code blocks through a
// CodeBlockRenderer. Indented code blocks keep goldmark's default output.
type codeBlockNodeRenderer struct {
	render CodeBlockRenderer
}

func newCodeBlockNodeRenderer(fn CodeBlockRenderer) renderer.NodeRenderer {
	if fn == nil {
		fn = EscapeCodeBlock
	}
	return &codeBlockNodeRenderer{render: fn}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *codeBlockNodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockNodeRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.FencedCodeBlock)
	segments := n.Lines()
	lines := make([]string, segments.Len())
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		lines[i] = strings.TrimRight(string(seg.Value(source)), "\r\n")
	}

	if _, err := w.WriteString(r.render(string(n.Language(source)), lines)); err != nil {
		return ast.WalkStop, err
	}
	_ = w.WriteByte('\n')
	return ast.WalkSkipChildren, nil
}
