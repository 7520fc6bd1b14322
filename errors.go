package mdblog

import (
	"errors"

	"github.com/alnah/go-mdblog/internal/frontmatter"
	"github.com/alnah/go-mdblog/internal/pipeline"
)

// Sentinel errors for rendering operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// ErrMissingFrontMatter indicates the document has no leading --- block.
	ErrMissingFrontMatter = frontmatter.ErrMissingFrontMatter

	// ErrInvalidFrontMatter indicates malformed YAML or a missing title or
	// create_time.
	ErrInvalidFrontMatter = frontmatter.ErrInvalidFrontMatter

	// ErrDraftExcluded is returned for drafts when drafts are disabled.
	// It signals a skipped document, not a failure.
	ErrDraftExcluded = errors.New("draft excluded")

	ErrHTMLConversion = pipeline.ErrHTMLConversion
)
