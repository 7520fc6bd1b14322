package build

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/site"
)

// Source is a directory of Markdown files sharing a route prefix and a
// default template.
type Source struct {
	Dir             string // Directory on disk
	Name            string // Route prefix, e.g. "posts"
	DefaultTemplate string
}

// sourceFile is one discovered Markdown file.
type sourceFile struct {
	Path   string
	Source Source
}

// discoverFiles lists the Markdown files of every source in lexical order.
// Missing source directories are skipped with a warning. Hidden files and
// directories are ignored.
func discoverFiles(sources []Source, logger *zap.Logger) ([]sourceFile, error) {
	var files []sourceFile

	for _, src := range sources {
		if !fileutil.DirExists(src.Dir) {
			logger.Warn("source directory not found, skipping", zap.String("dir", src.Dir))
			continue
		}

		err := filepath.WalkDir(src.Dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != src.Dir && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && fileutil.IsMarkdown(path) {
				files = append(files, sourceFile{Path: path, Source: src})
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("discovering %s: %w", src.Dir, err)
		}
	}

	return files, nil
}

// defaultSources returns the post and page sources of a build.
func defaultSources(postsDir, spaDir string) []Source {
	return []Source{
		{Dir: postsDir, Name: filepath.Base(postsDir), DefaultTemplate: site.TemplatePost},
		{Dir: spaDir, Name: filepath.Base(spaDir), DefaultTemplate: site.TemplateSPA},
	}
}

// outputPath maps a route to its file under dist. Routes without an
// extension are directory pages.
func outputPath(dist, route string) string {
	clean := filepath.ToSlash(filepath.Clean("/" + route))
	if strings.HasSuffix(route, "/") || filepath.Ext(clean) == "" {
		clean = strings.TrimSuffix(clean, "/") + "/index.html"
	}
	return filepath.Join(dist, filepath.FromSlash(clean))
}

// isWithin reports whether path is dir or inside it.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// checkDist refuses output directories whose removal would delete sources.
func checkDist(dist string, protected ...string) error {
	if dist == "" || dist == filepath.Dir(dist) {
		return fmt.Errorf("%w: %q", ErrUnsafeDist, dist)
	}
	for _, p := range protected {
		if p != "" && isWithin(p, dist) {
			return fmt.Errorf("%w: %s contains %s", ErrUnsafeDist, dist, p)
		}
	}
	return nil
}

// removeDist deletes the output directory if it exists.
func removeDist(dist string) error {
	if err := os.RemoveAll(dist); err != nil {
		return fmt.Errorf("%w: cleaning %s: %v", ErrWriteOutput, dist, err)
	}
	return nil
}
