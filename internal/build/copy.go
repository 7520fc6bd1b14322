package build

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/theme"
)

// copyAssets copies assets concurrently, at most b.workers at a time.
// Missing assets and directories are logged and skipped. Other I/O errors
// abort the copy.
func (b *Builder) copyAssets(ctx context.Context, assets []assetCopy) (int, error) {
	var copied atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for _, a := range assets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			err := fileutil.CopyFile(a.Src, a.Dst)
			switch {
			case errors.Is(err, os.ErrNotExist), errors.Is(err, fileutil.ErrSourceIsDir):
				b.logger.Warn("asset not copied", zap.String("asset", a.Src), zap.Error(err))
				return nil
			case err != nil:
				return fmt.Errorf("%w: %s: %v", ErrCopyAsset, a.Src, err)
			}

			copied.Add(1)
			b.logger.Info("generated", zap.String("path", b.relRoute(a.Dst)), zap.Bool("copied", true))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(copied.Load()), err
	}
	return int(copied.Load()), nil
}

// writeStatic copies the theme's static files to the output root.
func (b *Builder) writeStatic(loader theme.Loader) (int, error) {
	static, err := loader.Static()
	if errors.Is(err, theme.ErrStaticNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrLoadTemplate, err)
	}

	written := 0
	err = fs.WalkDir(static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(static, name)
		if err != nil {
			return err
		}
		dst := filepath.Join(b.opts.Dirs.Dist, filepath.FromSlash(name))
		if err := fileutil.WriteFile(dst, data); err != nil {
			return err
		}

		written++
		b.logger.Info("generated", zap.String("path", b.relRoute(dst)), zap.Bool("copied", true))
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("%w: static files: %v", ErrWriteOutput, err)
	}
	return written, nil
}
