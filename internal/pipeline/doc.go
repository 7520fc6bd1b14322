// Package pipeline implements the Markdown-to-HTML stage of post rendering.
//
// It owns the goldmark engine configuration:
//   - GFM, footnotes and definition lists
//   - heading IDs and attributes
//   - link rewriting through internal/linkrewrite
//   - pluggable rendering of fenced code blocks (CodeBlockRenderer)
//
// Front matter is split off before the body reaches this package, and the
// derived fields (reading time, abstract) are computed by the caller from the
// returned HTML. Syntax highlighting is optional: ChromaCodeBlock wraps chroma
// and WriteHighlightCSS emits the stylesheet the build publishes with it.
package pipeline
