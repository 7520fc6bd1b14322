package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	mdblog "github.com/alnah/go-mdblog"
	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/site"
)

// fileResult is the outcome of one source file. Each worker writes only the
// slot of the file it processed.
type fileResult struct {
	file   sourceFile
	post   *site.Post
	route  string   // Effective route, after a pathname override
	output string   // Written file
	assets []string // Local asset source paths
	draft  bool     // Skipped draft
	err    error
}

// renderAll renders files on a fixed pool of workers and returns one result
// per file, in discovery order. It returns after every worker finished.
func (b *Builder) renderAll(ctx context.Context, files []sourceFile, templates *site.Templates) []fileResult {
	if len(files) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	concurrency := b.workers
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]fileResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = fileResult{file: files[idx], err: err}
					continue
				}
				results[idx] = b.renderFile(ctx, files[idx], templates)
				if results[idx].err != nil && b.opts.FailFast {
					cancel()
				}
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderFile renders one source file and writes its page.
func (b *Builder) renderFile(ctx context.Context, f sourceFile, templates *site.Templates) fileResult {
	result := fileResult{file: f}

	route, err := site.RouteForSource(f.Source.Dir, f.Source.Name, f.Path)
	if err != nil {
		result.err = err
		return result
	}

	content, err := os.ReadFile(f.Path) // #nosec G304 -- discovered path
	if err != nil {
		result.err = fmt.Errorf("%w: %v", ErrReadSource, err)
		return result
	}

	res, err := b.renderer.Render(ctx, mdblog.Input{
		Markdown:  string(content),
		Route:     route,
		SourceDir: filepath.Dir(f.Path),
	})
	if errors.Is(err, mdblog.ErrDraftExcluded) {
		result.draft = true
		return result
	}
	if err != nil {
		result.err = err
		return result
	}

	post := site.NewPost(res, f.Source.DefaultTemplate)
	page, err := templates.Execute(post.TemplateName, site.PostModel{
		Base: site.NewBase(b.cfg, post.Title, post.Lang),
		Post: post,
	})
	if err != nil {
		result.err = err
		return result
	}

	output := outputPath(b.opts.Dirs.Dist, res.Route)
	if err := fileutil.WriteFile(output, []byte(page)); err != nil {
		result.err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return result
	}
	b.logger.Info("generated", zap.String("path", b.relRoute(output)))

	result.post = post
	result.route = res.Route
	result.output = output
	result.assets = res.LocalAssetLinks
	return result
}
