// Package theme provides the HTML templates and static files of the site.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default theme)
//	    ├── FilesystemLoader  - loads from a theme directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// Resolver is the loader used by the build. It tries the custom theme first
// and falls back to the embedded theme when a template or the static
// directory is not found there. A theme directory can therefore override a
// single template and keep every other file of the default theme.
//
// # Directory Structure
//
//	{basePath}/
//	├── templates/
//	│   ├── _head.html       # Partial, shared by every page template
//	│   ├── index.html
//	│   ├── post.html
//	│   └── ...
//	└── static/              # Copied verbatim to the output root
//	    └── css/style.css
//
// Templates whose name starts with an underscore are partials.
//
// # Security
//
// Template names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package theme
