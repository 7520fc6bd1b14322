package mdblog

import (
	"io"

	"github.com/alnah/go-mdblog/internal/frontmatter"
	"github.com/alnah/go-mdblog/internal/pipeline"
)

// FrontMatter is the metadata block of a post or page.
type FrontMatter = frontmatter.FrontMatter

// CodeBlockRenderer renders one fenced code block from its language and
// lines. See EscapeCodeBlock and ChromaCodeBlock.
type CodeBlockRenderer = pipeline.CodeBlockRenderer

// DefaultLang is the language recorded for documents without a lang field.
const DefaultLang = frontmatter.DefaultLang

// Input is one document to render.
type Input struct {
	Markdown  string // Full source including the front matter block
	Route     string // Site path the page is published at, e.g. /posts/hi.html
	SourceDir string // Directory of the source file, for asset resolution (optional)
}

// RenderResult is the output of rendering one document.
type RenderResult struct {
	HTML            string
	FrontMatter     FrontMatter
	LocalAssetLinks []string // Resolved source paths, deduplicated
	Route           string   // FrontMatter.Pathname when set, otherwise Input.Route
	Words           int      // 0 when duration and description were both supplied
	Duration        string   // Reading time, e.g. "3 min"
	Description     string   // Abstract
}

// EscapeCodeBlock is the default CodeBlockRenderer. It emits HTML-escaped
// source inside <pre><code class="language-LANG">.
func EscapeCodeBlock(lang string, lines []string) string {
	return pipeline.EscapeCodeBlock(lang, lines)
}

// ChromaCodeBlock returns a CodeBlockRenderer that highlights with the named
// chroma style. Unknown languages fall back to EscapeCodeBlock.
func ChromaCodeBlock(style string) CodeBlockRenderer {
	return pipeline.ChromaCodeBlock(style)
}

// WriteHighlightCSS writes the stylesheet for ChromaCodeBlock output with
// the named style. Unknown styles use chroma's fallback style.
func WriteHighlightCSS(w io.Writer, style string) error {
	return pipeline.WriteHighlightCSS(w, style)
}
