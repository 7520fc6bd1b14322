package linkrewrite

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var rewriterKey = parser.NewContextKey()

// NewContext returns a parser context carrying r for the Transformer.
func NewContext(r *Rewriter) parser.Context {
	pc := parser.NewContext()
	pc.Set(rewriterKey, r)
	return pc
}

// Transformer rewrites link and image destinations while the document is
// parsed. Parses without a Rewriter in their context are left untouched.
type Transformer struct{}

// Transform implements parser.ASTTransformer.
func (Transformer) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	r, _ := pc.Get(rewriterKey).(*Rewriter)
	if r == nil {
		return
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			node.Destination = []byte(r.Rewrite(string(node.Destination)))
		case *ast.Image:
			node.Destination = []byte(r.Rewrite(string(node.Destination)))
		}
		return ast.WalkContinue, nil
	})
}
