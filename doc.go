// Package mdblog renders Markdown blog posts to HTML.
//
// # Quick Start
//
// Create a renderer once and share it between goroutines:
//
//	r := mdblog.NewRenderer()
//
//	result, err := r.Render(ctx, mdblog.Input{
//	    Markdown:  "---\ntitle: Hi\ncreate_time: 2024-01-01\n---\n# Hello\n![img](./a.png)",
//	    Route:     "/posts/hi.html",
//	    SourceDir: "/blog/posts",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.HTML)            // <h1 id="hello">Hello</h1> ... src="/posts/a.png"
//	fmt.Println(result.LocalAssetLinks) // [/blog/posts/a.png]
//
// # Rendering Steps
//
// Render performs these steps for every document:
//
//  1. Front matter extraction (a leading --- YAML block, title and
//     create_time required)
//  2. Draft gate (see WithDrafts)
//  3. Markdown to HTML via Goldmark (GFM, footnotes, definition lists)
//     with every link passed through the route rewriter
//  4. Reading time and abstract derivation for fields the front matter
//     leaves empty
//
// # Links and Assets
//
// Links starting with ./ are resolved against the directory of the page
// route, so ./a.png on /posts/hi.html becomes /posts/a.png. Site-absolute,
// external and fragment links are left alone. Every local relative link is
// reported in RenderResult.LocalAssetLinks, resolved against Input.SourceDir,
// so the caller can copy the files next to the page.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r := mdblog.NewRenderer(
//	    mdblog.WithHighlightStyle("github"),
//	    mdblog.WithWordsPerMinute(250),
//	    mdblog.WithDrafts(false),
//	)
//
// Code blocks are rendered by a CodeBlockRenderer strategy. The default,
// EscapeCodeBlock, emits escaped source; ChromaCodeBlock highlights with
// chroma and needs the stylesheet written by the build.
package mdblog
