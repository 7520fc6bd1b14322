package linkrewrite

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// rawHTMLAttrs lists the element attributes that hold link destinations.
var rawHTMLAttrs = map[string]string{
	"a":      "href",
	"img":    "src",
	"source": "src",
	"video":  "src",
	"audio":  "src",
}

// RewriteHTML passes the links of inline HTML elements through r.
// Only needed when raw HTML is allowed in Markdown: goldmark-generated links
// are handled by Transformer.
//
// The input is tokenized, not parsed into a tree: every token is copied
// byte for byte except the tags whose link changed, so XHTML void tags and
// entities produced by goldmark are kept.
//
// Rewrites:
//   - a[href]
//   - img[src], source[src], video[src], audio[src]
//
// Does NOT rewrite:
//   - srcset attributes
//   - CSS url() references
//   - script[src]
func RewriteHTML(fragment string, r *Rewriter) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return fragment, nil
	}

	var buf strings.Builder
	buf.Grow(len(fragment))

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", err
			}
			return buf.String(), nil
		case html.StartTagToken, html.SelfClosingTagToken:
			// Token lowercases the tag name in place, so copy the raw bytes first.
			raw := append([]byte(nil), z.Raw()...)
			tok := z.Token()
			if rewriteToken(&tok, r) {
				buf.WriteString(tok.String())
			} else {
				buf.Write(raw)
			}
		default:
			buf.Write(z.Raw())
		}
	}
}

// rewriteToken rewrites the link attribute of tok and reports whether it
// changed.
func rewriteToken(tok *html.Token, r *Rewriter) bool {
	key, ok := rawHTMLAttrs[tok.Data]
	if !ok {
		return false
	}
	changed := false
	for i, attr := range tok.Attr {
		if attr.Key != key || attr.Namespace != "" {
			continue
		}
		if val := r.Rewrite(attr.Val); val != attr.Val {
			tok.Attr[i].Val = val
			changed = true
		}
	}
	return changed
}
