package mdblog_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mdblog "github.com/alnah/go-mdblog"
)

// Example demonstrates rendering a post and reading its derived fields.
func Example() {
	r := mdblog.NewRenderer()

	result, err := r.Render(context.Background(), mdblog.Input{
		Markdown: "---\ntitle: Hi\ncreate_time: 2024-01-01\ntags: [go]\n---\n# Hello\n\n![img](./a.png)",
		Route:    "/posts/hi.html",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.FrontMatter.Title, result.FrontMatter.Tags)
	fmt.Println(strings.Contains(result.HTML, `src="/posts/a.png"`))
	fmt.Println(result.LocalAssetLinks)
	fmt.Println(result.Duration)
	// Output:
	// Hi [go]
	// true
	// [a.png]
	// 1 min
}

// Example_drafts demonstrates skipping drafts in a production build.
func Example_drafts() {
	r := mdblog.NewRenderer(mdblog.WithDrafts(false))

	_, err := r.Render(context.Background(), mdblog.Input{
		Markdown: "---\ntitle: WIP\ncreate_time: 2024-01-01\ndraft: true\n---\nnot yet",
		Route:    "/posts/wip.html",
	})
	if errors.Is(err, mdblog.ErrDraftExcluded) {
		fmt.Println("draft skipped")
	}
	// Output: draft skipped
}

// Example_codeBlocks demonstrates a custom code block strategy.
func Example_codeBlocks() {
	r := mdblog.NewRenderer(mdblog.WithCodeBlockRenderer(func(lang string, lines []string) string {
		return fmt.Sprintf("<div class=%q>%d lines</div>", lang, len(lines))
	}))

	result, err := r.Render(context.Background(), mdblog.Input{
		Markdown: "---\ntitle: Code\ncreate_time: 2024-01-01\n---\n```go\npackage main\n\nfunc main() {}\n```",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.TrimSpace(result.HTML))
	// Output: <div class="go">3 lines</div>
}
