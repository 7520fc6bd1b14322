package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/alnah/go-mdblog/internal/dateutil"
	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultConfigName is searched when no config is given on the command line.
const DefaultConfigName = "blog"

// Field length limits.
const (
	MaxTitleLength       = 200  // Blog title
	MaxNameLength        = 100  // Author name
	MaxEmailLength       = 254  // RFC 5321
	MaxURLLength         = 2048 // Browser limit
	MaxDescriptionLength = 500  // Blog description
	MaxLabelLength       = 100  // Link title
	MaxLangLength        = 35   // BCP 47 tag
	MaxPathLength        = 4096 // Directory paths
	MaxStyleLength       = 50   // Chroma style name
)

// Value ranges.
const (
	MaxWorkers        = 64
	MaxWordsPerMinute = 10000
	MaxAbstractLength = 10000
)

// Default values.
const (
	DefaultLang           = "zh-CN"
	DefaultWordsPerMinute = 200
	DefaultAbstractLength = 140
)

// Default source and output directory names, relative to the blog root.
const (
	DefaultPostsDir = "posts"
	DefaultSPADir   = "spa"
	DefaultThemeDir = "theme"
	DefaultDistDir  = "dist"
)

var httpURL = regexp.MustCompile(`^https?://`)

// Config holds the site configuration.
type Config struct {
	Title       string         `yaml:"title"`
	Author      string         `yaml:"author"`
	Description string         `yaml:"description"`
	Email       string         `yaml:"email"`
	BlogLink    string         `yaml:"blog_link"` // Absolute site URL, used for the feed
	Links       []Link         `yaml:"links"`     // Navigation links
	Lang        string         `yaml:"lang"`
	DateFormat  string         `yaml:"date_format"` // dateutil tokens or preset
	Dirs        DirsConfig     `yaml:"dirs"`
	Markdown    MarkdownConfig `yaml:"markdown"`
	Build       BuildConfig    `yaml:"build"`
}

// Link is a navigation link shown in the site header.
type Link struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// DirsConfig locates sources and output. Relative paths are resolved
// against the blog root.
type DirsConfig struct {
	Posts string `yaml:"posts"`
	SPA   string `yaml:"spa"`
	Theme string `yaml:"theme"`
	Dist  string `yaml:"dist"`
}

// MarkdownConfig defines rendering options.
type MarkdownConfig struct {
	Unsafe         bool   `yaml:"unsafe"`          // Pass raw HTML through
	HardWraps      bool   `yaml:"hard_wraps"`      // Newlines become <br />
	HighlightStyle string `yaml:"highlight_style"` // Chroma style, empty = no highlighting
	WordsPerMinute int    `yaml:"words_per_minute"`
	AbstractLength int    `yaml:"abstract_length"`
}

// BuildConfig defines build execution options.
type BuildConfig struct {
	Workers  int  `yaml:"workers"`   // 0 = automatic
	FailFast bool `yaml:"fail_fast"` // Abort on the first failing post
}

// DefaultConfig returns a usable configuration for a blog in the current
// directory.
func DefaultConfig() *Config {
	return &Config{
		Title:      "My Blog",
		Lang:       DefaultLang,
		DateFormat: dateutil.DefaultDateFormat,
		Links:      []Link{},
		Dirs: DirsConfig{
			Posts: DefaultPostsDir,
			SPA:   DefaultSPADir,
			Theme: DefaultThemeDir,
			Dist:  DefaultDistDir,
		},
		Markdown: MarkdownConfig{
			HardWraps:      true,
			WordsPerMinute: DefaultWordsPerMinute,
			AbstractLength: DefaultAbstractLength,
		},
	}
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"title", c.Title, MaxTitleLength},
		{"author", c.Author, MaxNameLength},
		{"description", c.Description, MaxDescriptionLength},
		{"email", c.Email, MaxEmailLength},
		{"blog_link", c.BlogLink, MaxURLLength},
		{"lang", c.Lang, MaxLangLength},
		{"dirs.posts", c.Dirs.Posts, MaxPathLength},
		{"dirs.spa", c.Dirs.SPA, MaxPathLength},
		{"dirs.theme", c.Dirs.Theme, MaxPathLength},
		{"dirs.dist", c.Dirs.Dist, MaxPathLength},
		{"markdown.highlight_style", c.Markdown.HighlightStyle, MaxStyleLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}
	for i, link := range c.Links {
		if err := validateFieldLength(fmt.Sprintf("links[%d].title", i), link.Title, MaxLabelLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("links[%d].url", i), link.URL, MaxURLLength); err != nil {
			return err
		}
	}

	errs := validation.Errors{
		"email":                     validation.Validate(c.Email, is.EmailFormat),
		"blog_link":                 validation.Validate(c.BlogLink, is.URL, validation.Match(httpURL).Error("must start with http:// or https://")),
		"date_format":               validation.Validate(c.DateFormat, validation.By(validateDateFormat)),
		"markdown.words_per_minute": validation.Validate(c.Markdown.WordsPerMinute, validation.Min(0), validation.Max(MaxWordsPerMinute)),
		"markdown.abstract_length":  validation.Validate(c.Markdown.AbstractLength, validation.Min(0), validation.Max(MaxAbstractLength)),
		"build.workers":             validation.Validate(c.Build.Workers, validation.Min(0), validation.Max(MaxWorkers)),
	}
	for i, link := range c.Links {
		errs[fmt.Sprintf("links[%d].url", i)] = validation.Validate(link.URL, validation.Required)
	}
	if err := errs.Filter(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	return nil
}

func validateDateFormat(value any) error {
	format, _ := value.(string)
	if format == "" {
		return nil
	}
	_, err := dateutil.Layout(format)
	return err
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path,
// relative paths being resolved against dir. Otherwise, it's treated as a
// config name and searched in dir, then in the user config directory.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(dir, nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
		if !filepath.IsAbs(configPath) && dir != "" {
			configPath = filepath.Join(dir, configPath)
		}
	} else {
		configPath, err = resolveConfigPath(dir, nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: dir, ~/.config/go-mdblog/
func resolveConfigPath(dir, name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := filepath.Join(dir, name+ext)
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdblog", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// ResolveDir returns path joined onto root unless it is already absolute.
func ResolveDir(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
