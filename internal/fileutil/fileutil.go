// Package fileutil provides file and path utility functions for writing the
// generated site.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath   = errors.New("path cannot be empty")
	ErrSourceIsDir = errors.New("source is a directory")
)

// Permissions for generated files and directories.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// markdownExtensions lists the extensions treated as post sources.
var markdownExtensions = []string{".md", ".markdown"}

// WriteFile writes data to path, creating parent directories as needed.
// The content is written to a temporary file in the same directory and
// renamed into place so readers never observe a partial file.
func WriteFile(path string, data []byte) error {
	if path == "" {
		return ErrEmptyPath
	}
	return writeAtomic(path, FilePerm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// CopyFile copies the regular file src to dst, creating parent directories
// as needed. The source permission bits are kept.
func CopyFile(src, dst string) error {
	if src == "" || dst == "" {
		return ErrEmptyPath
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("reading source info: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceIsDir, src)
	}

	return writeAtomic(dst, info.Mode().Perm(), func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}

func writeAtomic(path string, perm os.FileMode, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".mdblog-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if writeErr := write(tmpFile); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsMarkdown returns true if the file name has a Markdown extension
// (.md or .markdown, case-insensitive).
func IsMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, m := range markdownExtensions {
		if ext == m {
			return true
		}
	}
	return false
}

// TrimMarkdownExt removes a Markdown extension from name.
func TrimMarkdownExt(name string) string {
	if IsMarkdown(name) {
		return name[:len(name)-len(filepath.Ext(name))]
	}
	return name
}
