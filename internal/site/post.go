package site

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	mdblog "github.com/alnah/go-mdblog"
	"github.com/alnah/go-mdblog/internal/fileutil"
)

// ErrOutsideSourceDir indicates a source file is not under its source root.
var ErrOutsideSourceDir = errors.New("file is outside the source directory")

const indexSuffix = "/index.html"

// Template names with a meaning for the build.
const (
	TemplatePost     = "post"
	TemplateSPA      = "spa"
	TemplateIndex    = "index"
	TemplateTag      = "tag"
	TemplateNotFound = "404"
)

// Post is the page record of one rendered file.
type Post struct {
	Title        string
	Pathname     string // Public URL path
	HTMLContent  string
	Tags         []string
	CreateTime   time.Time
	UpdateTime   time.Time
	TimeToRead   string
	AbstractText string
	Lang         string
	TemplateName string
	IsDraft      bool
	FrontMatter  mdblog.FrontMatter
}

// NewPost builds the page record for a render result. defaultTemplate is
// used when the front matter names no template.
func NewPost(res *mdblog.RenderResult, defaultTemplate string) *Post {
	fm := res.FrontMatter

	templateName := fm.TemplateName
	if templateName == "" {
		templateName = defaultTemplate
	}

	return &Post{
		Title:        fm.Title,
		Pathname:     Pathname(res.Route),
		HTMLContent:  res.HTML,
		Tags:         fm.Tags,
		CreateTime:   fm.CreateTime,
		UpdateTime:   fm.UpdateTime,
		TimeToRead:   res.Duration,
		AbstractText: res.Description,
		Lang:         fm.Lang,
		TemplateName: templateName,
		IsDraft:      fm.Draft,
		FrontMatter:  fm,
	}
}

// Pathname returns the public URL path of a route: a trailing /index.html
// is stripped so directory pages are linked without it.
func Pathname(route string) string {
	if !strings.HasSuffix(route, indexSuffix) {
		return route
	}
	trimmed := strings.TrimSuffix(route, indexSuffix)
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// SortPosts orders posts by creation time, newest first. Posts created at
// the same instant are ordered by pathname.
func SortPosts(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if !a.CreateTime.Equal(b.CreateTime) {
			return a.CreateTime.After(b.CreateTime)
		}
		return a.Pathname < b.Pathname
	})
}

// TagGroup holds the posts sharing one tag.
type TagGroup struct {
	Name  string
	Posts []*Post
}

// GroupByTag groups posts by tag. Tags sharing a slug share a group, named
// after the first spelling seen. Groups are sorted by tag name and the
// posts of each group with SortPosts. Empty tags are ignored and a post
// listing a tag twice appears once in its group.
func GroupByTag(posts []*Post) []TagGroup {
	byTag := make(map[string]*TagGroup)
	var order []string
	for _, post := range posts {
		seen := make(map[string]bool, len(post.Tags))
		for _, tag := range post.Tags {
			tag = strings.TrimSpace(tag)
			slug := tagSlug(tag)
			if slug == "" || seen[slug] {
				continue
			}
			seen[slug] = true
			group, ok := byTag[slug]
			if !ok {
				group = &TagGroup{Name: tag}
				byTag[slug] = group
				order = append(order, slug)
			}
			group.Posts = append(group.Posts, post)
		}
	}

	groups := make([]TagGroup, 0, len(order))
	for _, slug := range order {
		group := byTag[slug]
		SortPosts(group.Posts)
		groups = append(groups, *group)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})
	return groups
}

// TagRoute returns the route of a tag index page. The tag is trimmed and
// each run of whitespace becomes an underscore. Path separators also
// become underscores so a tag page always stays under /tags/.
func TagRoute(tag string) string {
	return "/tags/" + tagSlug(tag) + indexSuffix
}

// TagURL returns the public URL path of a tag index page.
func TagURL(tag string) string {
	return "/tags/" + tagSlug(tag) + "/"
}

var slugSeparators = strings.NewReplacer("/", "_", `\`, "_")

func tagSlug(tag string) string {
	slug := slugSeparators.Replace(strings.Join(strings.Fields(tag), "_"))
	if strings.Trim(slug, ".") == "" {
		// "." and ".." would resolve to a parent page.
		return strings.Repeat("_", len(slug))
	}
	return slug
}

// RouteForSource maps a Markdown file under srcRoot to its route under
// dirName, e.g. posts/a/b.md becomes /posts/a/b.html.
func RouteForSource(srcRoot, dirName, file string) (string, error) {
	rel, err := filepath.Rel(srcRoot, file)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrOutsideSourceDir, file, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%w: %s", ErrOutsideSourceDir, file)
	}
	return path.Join("/", dirName, fileutil.TrimMarkdownExt(rel)+".html"), nil
}
