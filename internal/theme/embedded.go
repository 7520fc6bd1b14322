package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed all:default
var defaultTheme embed.FS

const (
	embeddedTemplates = "default/templates"
	embeddedStatic    = "default/static"
)

// EmbeddedLoader loads the default theme compiled into the binary.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads an HTML template from the default theme by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := defaultTheme.ReadFile(embeddedTemplates + "/" + name + templateExt)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// ListTemplates returns the names of the default templates.
func (e *EmbeddedLoader) ListTemplates() ([]string, error) {
	entries, err := fs.ReadDir(defaultTheme, embeddedTemplates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return templateNames(entries), nil
}

// Static returns the default theme's static files.
func (e *EmbeddedLoader) Static() (fs.FS, error) {
	sub, err := fs.Sub(defaultTheme, embeddedStatic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStaticNotFound, err)
	}
	return sub, nil
}

// templateNames extracts sorted template names from directory entries,
// skipping directories, non-HTML files and names that fail validation.
func templateNames(entries []fs.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), templateExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), templateExt)
		if ValidateAssetName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
