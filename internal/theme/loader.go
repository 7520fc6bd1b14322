package theme

import "io/fs"

// Loader defines the contract for loading a site theme.
type Loader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// ListTemplates returns the names of all templates, sorted.
	ListTemplates() ([]string, error)

	// Static returns the static files, rooted at the static directory.
	// Returns ErrStaticNotFound if the theme has none.
	Static() (fs.FS, error)
}

// templateExt is the file extension of template files.
const templateExt = ".html"

// IsPartial reports whether the template is a partial shared by page templates.
func IsPartial(name string) bool {
	return len(name) > 0 && name[0] == '_'
}
