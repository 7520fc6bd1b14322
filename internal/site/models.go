package site

import "github.com/alnah/go-mdblog/internal/config"

// HasBlogConfig is implemented by every template view model.
type HasBlogConfig interface {
	BlogConfig() *config.Config
}

// Base carries what every page template needs.
type Base struct {
	Blog      *config.Config
	PageTitle string // Empty for the home page
	Lang      string
}

// NewBase returns a Base for a page. An empty lang uses the blog language.
func NewBase(cfg *config.Config, pageTitle, lang string) Base {
	if lang == "" {
		lang = cfg.Lang
	}
	return Base{Blog: cfg, PageTitle: pageTitle, Lang: lang}
}

// BlogConfig returns the site configuration.
func (b Base) BlogConfig() *config.Config {
	return b.Blog
}

// PostModel is the view model of post and spa pages.
type PostModel struct {
	Base
	Post *Post
}

// IndexModel is the view model of the home page.
type IndexModel struct {
	Base
	Posts []*Post
	Tags  []TagGroup
}

// TagModel is the view model of a tag index page.
type TagModel struct {
	Base
	TagName string
	Posts   []*Post
}

// NotFoundModel is the view model of the 404 page.
type NotFoundModel struct {
	Base
}

var (
	_ HasBlogConfig = PostModel{}
	_ HasBlogConfig = IndexModel{}
	_ HasBlogConfig = TagModel{}
	_ HasBlogConfig = NotFoundModel{}
)
