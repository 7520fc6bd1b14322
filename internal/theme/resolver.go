package theme

import (
	"errors"
	"io/fs"
	"sort"
)

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the template or static directory is not found there.
type Resolver struct {
	custom   Loader // nil if no custom theme configured
	embedded Loader
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only the embedded theme is used.
// Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads a template, trying the custom theme first if available.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(name)
	}

	content, err := r.custom.LoadTemplate(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !isNotFoundError(err) {
		return "", err
	}

	return r.embedded.LoadTemplate(name)
}

// ListTemplates returns the union of custom and embedded template names.
func (r *Resolver) ListTemplates() ([]string, error) {
	names, err := r.embedded.ListTemplates()
	if err != nil {
		return nil, err
	}
	if r.custom == nil {
		return names, nil
	}

	custom, err := r.custom.ListTemplates()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(names)+len(custom))
	union := make([]string, 0, len(names)+len(custom))
	for _, name := range append(names, custom...) {
		if seen[name] {
			continue
		}
		seen[name] = true
		union = append(union, name)
	}
	sort.Strings(union)
	return union, nil
}

// Static returns the custom static directory, or the embedded one when the
// custom theme has none.
func (r *Resolver) Static() (fs.FS, error) {
	if r.custom == nil {
		return r.embedded.Static()
	}

	static, err := r.custom.Static()
	if err == nil {
		return static, nil
	}
	if !isNotFoundError(err) {
		return nil, err
	}

	return r.embedded.Static()
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrStaticNotFound)
}

// HasCustomLoader returns true if a custom theme is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
