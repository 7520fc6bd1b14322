// Package frontmatter extracts and validates the YAML block that leads every
// post and page.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-mdblog/internal/yamlutil"
)

// Sentinel errors for front matter parsing.
var (
	ErrMissingFrontMatter = errors.New("missing front matter")
	ErrInvalidFrontMatter = errors.New("invalid front matter")
)

// DefaultLang is used when neither the document nor the caller sets a language.
const DefaultLang = "zh-CN"

// FrontMatter is the metadata of one post or page.
// Zero times mean the field was absent.
type FrontMatter struct {
	Title        string    `yaml:"title"`
	CreateTime   time.Time `yaml:"create_time"`
	UpdateTime   time.Time `yaml:"update_time"`
	Tags         []string  `yaml:"tags"`
	TemplateName string    `yaml:"template"`
	Draft        bool      `yaml:"draft"`
	Duration     string    `yaml:"duration"`
	Description  string    `yaml:"description"`
	Lang         string    `yaml:"lang"`
	Pathname     string    `yaml:"pathname"`
}

// Validate reports missing required fields, keyed by their YAML names.
func (fm FrontMatter) Validate() error {
	return validation.Errors{
		"title":       validation.Validate(fm.Title, validation.Required),
		"create_time": validation.Validate(fm.CreateTime, validation.Required),
	}.Filter()
}

var yamlFormat = frontmatter.NewFormat("---", "---", yamlutil.Unmarshal)

// Parse splits the leading front matter block from source and returns the
// decoded metadata together with the remaining Markdown body. Empty lang
// values are replaced with defaultLang, or DefaultLang when that is empty.
func Parse(source []byte, defaultLang string) (FrontMatter, []byte, error) {
	var fm FrontMatter

	body, err := frontmatter.MustParse(bytes.NewReader(Normalize(source)), &fm, yamlFormat)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return FrontMatter{}, nil, ErrMissingFrontMatter
		}
		return FrontMatter{}, nil, fmt.Errorf("%w: %v", ErrInvalidFrontMatter, err)
	}

	if err := fm.Validate(); err != nil {
		return FrontMatter{}, nil, fmt.Errorf("%w: %v", ErrInvalidFrontMatter, err)
	}

	if fm.Tags == nil {
		fm.Tags = []string{}
	}
	if fm.Lang == "" {
		fm.Lang = defaultLang
	}
	if fm.Lang == "" {
		fm.Lang = DefaultLang
	}

	return fm, body, nil
}
