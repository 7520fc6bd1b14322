package build

import (
	"errors"
	"fmt"
)

// Sentinel errors for build operations.
var (
	// ErrFileFailed matches every per-file error.
	ErrFileFailed = errors.New("file failed to build")

	// ErrPostsFailed is returned by Run when at least one file failed and
	// FailFast is off.
	ErrPostsFailed = errors.New("some files failed to build")

	// ErrUnsafeDist indicates the output directory cannot be cleaned safely.
	ErrUnsafeDist = errors.New("unsafe output directory")

	ErrReadSource   = errors.New("failed to read source file")
	ErrWriteOutput  = errors.New("failed to write output file")
	ErrCopyAsset    = errors.New("failed to copy asset")
	ErrLoadTemplate = errors.New("failed to load theme")
)

// FileError records why one source file failed.
// It matches both ErrFileFailed and the underlying cause with errors.Is.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{ErrFileFailed, e.Err}
}
