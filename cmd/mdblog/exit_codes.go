package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdblog/internal/build"
	"github.com/alnah/go-mdblog/internal/config"
	"github.com/alnah/go-mdblog/internal/theme"
)

// Exit codes for the mdblog CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or theme
	ExitIO      = 3 // File not found, permission denied
	ExitContent = 4 // At least one post failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, build.ErrPostsFailed) ||
		errors.Is(err, build.ErrFileFailed) {
		return ExitContent
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, build.ErrUnsafeDist) ||
		errors.Is(err, build.ErrLoadTemplate) ||
		errors.Is(err, theme.ErrPathTraversal) ||
		errors.Is(err, theme.ErrInvalidBasePath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrResolveRoot) ||
		errors.Is(err, build.ErrReadSource) ||
		errors.Is(err, build.ErrWriteOutput) ||
		errors.Is(err, build.ErrCopyAsset) {
		return ExitIO
	}

	return ExitGeneral
}
