package mdblog

import (
	"github.com/alnah/go-mdblog/internal/textstat"
)

// Default derivation parameters.
const (
	DefaultWordsPerMinute = textstat.DefaultWordsPerMinute
	DefaultAbstractLength = textstat.DefaultAbstractLength
)

// Option configures a Renderer.
type Option func(*rendererConfig)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	codeBlock      CodeBlockRenderer
	unsafe         bool
	hardWraps      bool
	wordsPerMinute int
	abstractLength int
	defaultLang    string
	drafts         bool
}

func defaultRendererConfig() rendererConfig {
	return rendererConfig{
		codeBlock:      EscapeCodeBlock,
		hardWraps:      true,
		wordsPerMinute: DefaultWordsPerMinute,
		abstractLength: DefaultAbstractLength,
		defaultLang:    DefaultLang,
		drafts:         true,
	}
}

// WithCodeBlockRenderer sets the strategy for fenced code blocks.
// A nil fn restores EscapeCodeBlock.
func WithCodeBlockRenderer(fn CodeBlockRenderer) Option {
	return func(c *rendererConfig) {
		if fn == nil {
			fn = EscapeCodeBlock
		}
		c.codeBlock = fn
	}
}

// WithHighlightStyle enables chroma highlighting with the named style.
// Shorthand for WithCodeBlockRenderer(ChromaCodeBlock(style)).
func WithHighlightStyle(style string) Option {
	return WithCodeBlockRenderer(ChromaCodeBlock(style))
}

// WithUnsafeHTML passes raw HTML in Markdown through to the output. Links in
// raw HTML are then rewritten like Markdown links.
func WithUnsafeHTML(enabled bool) Option {
	return func(c *rendererConfig) {
		c.unsafe = enabled
	}
}

// WithHardWraps renders soft line breaks as <br />. Enabled by default.
func WithHardWraps(enabled bool) Option {
	return func(c *rendererConfig) {
		c.hardWraps = enabled
	}
}

// WithWordsPerMinute sets the reading speed for derived durations.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithWordsPerMinute(n int) Option {
	if n <= 0 {
		panic("mdblog: WithWordsPerMinute must be positive")
	}
	return func(c *rendererConfig) {
		c.wordsPerMinute = n
	}
}

// WithAbstractLength sets the number of code points collected before the
// derived abstract may be cut. Panics if n < 0.
func WithAbstractLength(n int) Option {
	if n < 0 {
		panic("mdblog: WithAbstractLength must not be negative")
	}
	return func(c *rendererConfig) {
		c.abstractLength = n
	}
}

// WithDefaultLang sets the lang recorded for documents without one.
// An empty tag keeps DefaultLang.
func WithDefaultLang(tag string) Option {
	return func(c *rendererConfig) {
		if tag != "" {
			c.defaultLang = tag
		}
	}
}

// WithDrafts controls whether draft documents are rendered. When disabled,
// Render returns ErrDraftExcluded for drafts. Enabled by default.
func WithDrafts(enabled bool) Option {
	return func(c *rendererConfig) {
		c.drafts = enabled
	}
}
