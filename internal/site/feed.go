package site

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/feeds"

	"github.com/alnah/go-mdblog/internal/config"
)

// ErrMissingBlogLink indicates the feed cannot be built without an absolute
// site URL.
var ErrMissingBlogLink = errors.New("blog_link is required for the feed")

// FeedFile is the output path of the Atom feed.
const FeedFile = "atom.xml"

// BuildFeed renders posts as an Atom 1.0 feed, newest first. The feed
// update time is the newest post time, or now when there are no posts, so
// the output only depends on the posts.
func BuildFeed(cfg *config.Config, posts []*Post, now time.Time) (string, error) {
	if cfg.BlogLink == "" {
		return "", ErrMissingBlogLink
	}

	sorted := make([]*Post, len(posts))
	copy(sorted, posts)
	SortPosts(sorted)

	updated := time.Time{}
	for _, post := range sorted {
		if t := postUpdated(post); t.After(updated) {
			updated = t
		}
	}
	if updated.IsZero() {
		updated = now
	}

	feed := &feeds.Feed{
		Title:       cfg.Title,
		Link:        &feeds.Link{Href: cfg.BlogLink},
		Description: cfg.Description,
		Updated:     updated,
		Copyright:   fmt.Sprintf("Copyright %d %s", updated.Year(), cfg.BlogLink),
	}
	if cfg.Author != "" || cfg.Email != "" {
		feed.Author = &feeds.Author{Name: cfg.Author, Email: cfg.Email}
	}

	for _, post := range sorted {
		link := absoluteURL(cfg.BlogLink, post.Pathname)
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       post.Title,
			Link:        &feeds.Link{Href: link},
			Description: post.AbstractText,
			Id:          EntryID(link),
			Created:     post.CreateTime,
			Updated:     postUpdated(post),
		})
	}

	atom, err := feeds.ToXML(newAtomFeed(feed, sorted, absoluteURL(cfg.BlogLink, FeedFile)))
	if err != nil {
		return "", fmt.Errorf("rendering atom feed: %w", err)
	}
	return atom, nil
}

// atomFeed extends the gorilla Atom feed with a self link and per-entry
// categories. Its Links and Entries fields take the place of the embedded
// Link and Entries when marshaled.
type atomFeed struct {
	*feeds.AtomFeed
	Links   []feeds.AtomLink
	Entries []*atomEntry `xml:"entry"`
}

type atomEntry struct {
	*feeds.AtomEntry
	Categories []atomCategory
}

type atomCategory struct {
	XMLName xml.Name `xml:"category"`
	Term    string   `xml:"term,attr"`
}

// newAtomFeed converts feed, whose items follow posts, and adds one
// category per post tag.
func newAtomFeed(feed *feeds.Feed, posts []*Post, self string) *atomFeed {
	base := (&feeds.Atom{Feed: feed}).AtomFeed()
	out := &atomFeed{
		AtomFeed: base,
		Links: []feeds.AtomLink{
			{Href: base.Link.Href, Rel: "alternate"},
			{Href: self, Rel: "self", Type: "application/atom+xml"},
		},
	}
	base.Link = nil

	for i, entry := range base.Entries {
		e := &atomEntry{AtomEntry: entry}
		for _, tag := range posts[i].Tags {
			if tag = strings.TrimSpace(tag); tag != "" {
				e.Categories = append(e.Categories, atomCategory{Term: tag})
			}
		}
		out.Entries = append(out.Entries, e)
	}
	base.Entries = nil
	return out
}

// FeedXml implements feeds.XmlFeed.
func (f *atomFeed) FeedXml() interface{} {
	return f
}

// EntryID returns the stable Atom entry ID of a post URL.
func EntryID(link string) string {
	return "urn:uuid:" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String()
}

func postUpdated(post *Post) time.Time {
	if post.UpdateTime.After(post.CreateTime) {
		return post.UpdateTime
	}
	return post.CreateTime
}

func absoluteURL(base, route string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(route, "/")
}
