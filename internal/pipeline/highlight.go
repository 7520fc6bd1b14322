package pipeline

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// newChromaFormatter emits CSS classes instead of inline styles.
func newChromaFormatter() *chromahtml.Formatter {
	return chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.PreventSurroundingPre(true),
	)
}

// ChromaCodeBlock returns a CodeBlockRenderer that highlights code with
// chroma. Blocks in a language chroma does not know, or without a language,
// are rendered by EscapeCodeBlock.
func ChromaCodeBlock(styleName string) CodeBlockRenderer {
	style := styles.Get(styleName)
	formatter := newChromaFormatter()

	return func(lang string, lines []string) string {
		if lang == "" {
			return EscapeCodeBlock(lang, lines)
		}
		lexer := lexers.Get(lang)
		if lexer == nil {
			return EscapeCodeBlock(lang, lines)
		}

		it, err := chroma.Coalesce(lexer).Tokenise(nil, strings.Join(lines, "\n"))
		if err != nil {
			return EscapeCodeBlock(lang, lines)
		}

		var sb strings.Builder
		sb.WriteString(`<pre class="chroma"><code class="language-`)
		sb.WriteString(html.EscapeString(lang))
		sb.WriteString(`">`)
		if err := formatter.Format(&sb, style, it); err != nil {
			return EscapeCodeBlock(lang, lines)
		}
		sb.WriteString("</code></pre>")
		return sb.String()
	}
}

// WriteHighlightCSS writes the stylesheet matching ChromaCodeBlock output.
func WriteHighlightCSS(w io.Writer, styleName string) error {
	if err := newChromaFormatter().WriteCSS(w, styles.Get(styleName)); err != nil {
		return fmt.Errorf("writing highlight css: %w", err)
	}
	return nil
}
