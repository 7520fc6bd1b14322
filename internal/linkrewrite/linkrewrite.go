// Package linkrewrite classifies link destinations, rewrites page-relative
// links against a page route and collects the local files a page references.
package linkrewrite

import (
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var externalPrefixes = []string{"http://", "https://", "ftp://", "mailto:", "//"}

// URI schemes such as data: or tel: (RFC 3986 section 3.1).
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)

// IsLocalURL reports whether link points inside the site.
func IsLocalURL(link string) bool {
	for _, p := range externalPrefixes {
		if strings.HasPrefix(link, p) {
			return false
		}
	}
	return true
}

// Rewriter rewrites the links of one page and records the local assets they
// reference. A Rewriter is not safe for concurrent use; create one per render.
type Rewriter struct {
	dir       string
	sourceDir string
	seen      map[string]struct{}
	assets    []string
}

// NewRewriter returns a Rewriter for a page published at route whose source
// file lives in sourceDir. sourceDir may be empty.
func NewRewriter(route, sourceDir string) *Rewriter {
	return &Rewriter{
		dir:       RouteDir(route),
		sourceDir: sourceDir,
		seen:      make(map[string]struct{}),
	}
}

// RouteDir returns the URL directory relative links of a page resolve
// against. Routes ending in a slash are their own directory.
func RouteDir(route string) string {
	if route == "" {
		return "/"
	}
	if strings.HasSuffix(route, "/") {
		return route
	}
	return path.Dir(route)
}

// Rewrite returns the destination to emit for link and records it as an
// asset when it refers to a local file.
func (r *Rewriter) Rewrite(link string) string {
	r.collect(link)
	return r.rewrite(link)
}

func (r *Rewriter) rewrite(link string) string {
	if !strings.HasPrefix(link, "./") {
		return link
	}
	out := path.Join(r.dir, link[2:])
	if !strings.HasPrefix(out, "/") {
		out = "/" + out
	}
	if strings.HasSuffix(link, "/") && !strings.HasSuffix(out, "/") {
		out += "/"
	}
	return out
}

func (r *Rewriter) collect(link string) {
	if link == "" || !IsLocalURL(link) {
		return
	}
	if strings.HasPrefix(link, "/") || strings.HasPrefix(link, "#") || schemePattern.MatchString(link) {
		return
	}

	p := stripQueryAndFragment(link)
	if p == "" {
		return
	}
	if unescaped, err := url.PathUnescape(p); err == nil {
		p = unescaped
	}

	var resolved string
	if r.sourceDir != "" {
		resolved = filepath.Join(r.sourceDir, filepath.FromSlash(p))
	} else {
		resolved = filepath.Clean(filepath.FromSlash(p))
	}

	if _, dup := r.seen[resolved]; dup {
		return
	}
	r.seen[resolved] = struct{}{}
	r.assets = append(r.assets, resolved)
}

func stripQueryAndFragment(link string) string {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		return link[:i]
	}
	return link
}

// Assets returns the collected asset paths in first-seen order.
func (r *Rewriter) Assets() []string {
	out := make([]string, len(r.assets))
	copy(out, r.assets)
	return out
}
