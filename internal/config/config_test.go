package config

// Notes:
// - Tests are not parallel: the user config directory is redirected through
//   XDG_CONFIG_HOME with t.Setenv, which is incompatible with t.Parallel.
// - The unreadable file case is skipped on Windows and when running as root,
//   where chmod 0000 does not prevent reads.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestDefaultConfig - Defaults are valid and complete
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error: %v", err)
	}

	want := DirsConfig{Posts: "posts", SPA: "spa", Theme: "theme", Dist: "dist"}
	if diff := cmp.Diff(want, cfg.Dirs); diff != "" {
		t.Errorf("Dirs mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Markdown.HardWraps {
		t.Error("Markdown.HardWraps = false, want true")
	}
	if cfg.Markdown.WordsPerMinute != DefaultWordsPerMinute {
		t.Errorf("WordsPerMinute = %d, want %d", cfg.Markdown.WordsPerMinute, DefaultWordsPerMinute)
	}
	if cfg.Markdown.AbstractLength != DefaultAbstractLength {
		t.Errorf("AbstractLength = %d, want %d", cfg.Markdown.AbstractLength, DefaultAbstractLength)
	}
	if cfg.Lang != DefaultLang {
		t.Errorf("Lang = %q, want %q", cfg.Lang, DefaultLang)
	}
}

// ---------------------------------------------------------------------------
// TestValidateFieldLength - Length limit helper
// ---------------------------------------------------------------------------

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		max     int
		wantErr bool
	}{
		{"empty", "", 10, false},
		{"at limit", strings.Repeat("a", 10), 10, false},
		{"over limit", strings.Repeat("a", 11), 10, true},
		{"multibyte counts bytes", "博客博客", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("title", tt.value, tt.max)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Fatalf("error = %v, want ErrFieldTooLong", err)
				}
				if !strings.Contains(err.Error(), "title") {
					t.Errorf("error %q should name the field", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Field checks
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		field   string
	}{
		{
			name:   "valid full config",
			mutate: func(c *Config) { fullConfig(c) },
		},
		{
			name:    "title too long",
			mutate:  func(c *Config) { c.Title = strings.Repeat("t", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
			field:   "title",
		},
		{
			name:    "link title too long",
			mutate:  func(c *Config) { c.Links = []Link{{Title: strings.Repeat("l", MaxLabelLength+1), URL: "/"}} },
			wantErr: ErrFieldTooLong,
			field:   "links[0].title",
		},
		{
			name:    "invalid email",
			mutate:  func(c *Config) { c.Email = "not-an-email" },
			wantErr: ErrInvalidValue,
			field:   "email",
		},
		{
			name:    "blog link without scheme",
			mutate:  func(c *Config) { c.BlogLink = "example.com" },
			wantErr: ErrInvalidValue,
			field:   "blog_link",
		},
		{
			name:    "blog link with ftp scheme",
			mutate:  func(c *Config) { c.BlogLink = "ftp://example.com" },
			wantErr: ErrInvalidValue,
			field:   "blog_link",
		},
		{
			name:    "invalid date format",
			mutate:  func(c *Config) { c.DateFormat = "[YYYY" },
			wantErr: ErrInvalidValue,
			field:   "date_format",
		},
		{
			name:    "negative words per minute",
			mutate:  func(c *Config) { c.Markdown.WordsPerMinute = -1 },
			wantErr: ErrInvalidValue,
			field:   "markdown.words_per_minute",
		},
		{
			name:    "negative abstract length",
			mutate:  func(c *Config) { c.Markdown.AbstractLength = -5 },
			wantErr: ErrInvalidValue,
			field:   "markdown.abstract_length",
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.Build.Workers = MaxWorkers + 1 },
			wantErr: ErrInvalidValue,
			field:   "build.workers",
		},
		{
			name:    "link without url",
			mutate:  func(c *Config) { c.Links = []Link{{Title: "About"}} },
			wantErr: ErrInvalidValue,
			field:   "links[0].url",
		},
		{
			name:   "preset date format",
			mutate: func(c *Config) { c.DateFormat = "LONG" },
		},
		{
			name:   "empty optional fields",
			mutate: func(c *Config) { c.Email, c.BlogLink, c.DateFormat = "", "", "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should mention %q", err, tt.field)
			}
		})
	}
}

func fullConfig(c *Config) {
	c.Title = "Notes"
	c.Author = "Ada"
	c.Description = "Writing about Go"
	c.Email = "ada@example.com"
	c.BlogLink = "https://blog.example.com"
	c.Links = []Link{{Title: "GitHub", URL: "https://github.com/ada"}, {Title: "About", URL: "/about/"}}
	c.DateFormat = "MMMM D, YYYY"
	c.Markdown.HighlightStyle = "monokai"
	c.Build.Workers = 4
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading and name resolution
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := LoadConfig(t.TempDir(), "")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("explicit path merges over defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "site.yaml", `
title: Notes
author: Ada
blog_link: https://blog.example.com
links:
  - title: GitHub
    url: https://github.com/ada
markdown:
  highlight_style: monokai
build:
  workers: 2
`)

		cfg, err := LoadConfig("", path)
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}

		want := DefaultConfig()
		want.Title = "Notes"
		want.Author = "Ada"
		want.BlogLink = "https://blog.example.com"
		want.Links = []Link{{Title: "GitHub", URL: "https://github.com/ada"}}
		want.Markdown.HighlightStyle = "monokai"
		want.Build.Workers = 2

		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("hard wraps can be disabled", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "site.yaml", "markdown:\n  hard_wraps: false\n")

		cfg, err := LoadConfig("", path)
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Markdown.HardWraps {
			t.Error("HardWraps = true, want false")
		}
		if cfg.Markdown.WordsPerMinute != DefaultWordsPerMinute {
			t.Errorf("WordsPerMinute = %d, want default", cfg.Markdown.WordsPerMinute)
		}
	})

	t.Run("relative path resolved against dir", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, filepath.Join(dir, "conf"), "blog.yaml", "title: Relative\n")

		cfg, err := LoadConfig(dir, "conf/blog.yaml")
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Title != "Relative" {
			t.Errorf("Title = %q, want %q", cfg.Title, "Relative")
		}
	})

	t.Run("nonexistent path", func(t *testing.T) {
		_, err := LoadConfig("", filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "bad.yaml", "title: [unclosed\n")
		_, err := LoadConfig("", path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "typo.yaml", "titel: Oops\n")
		_, err := LoadConfig("", path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("field too long", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "long.yaml", "title: "+strings.Repeat("x", MaxTitleLength+1)+"\n")
		_, err := LoadConfig("", path)
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "bad-email.yaml", "email: nope\n")
		_, err := LoadConfig("", path)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("unreadable file", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("chmod 0000 does not prevent reads here")
		}
		path := writeConfig(t, t.TempDir(), "locked.yaml", "title: x\n")
		if err := os.Chmod(path, 0o000); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chmod(path, 0o644) })

		_, err := LoadConfig("", path)
		if err == nil {
			t.Fatal("expected error for unreadable file")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, should not be ErrConfigNotFound", err)
		}
	})

	t.Run("name resolves yaml in dir", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		dir := t.TempDir()
		writeConfig(t, dir, "blog.yaml", "title: From YAML\n")

		cfg, err := LoadConfig(dir, DefaultConfigName)
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Title != "From YAML" {
			t.Errorf("Title = %q, want %q", cfg.Title, "From YAML")
		}
	})

	t.Run("name resolves yml in dir", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		dir := t.TempDir()
		writeConfig(t, dir, "blog.yml", "title: From YML\n")

		cfg, err := LoadConfig(dir, "blog")
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Title != "From YML" {
			t.Errorf("Title = %q, want %q", cfg.Title, "From YML")
		}
	})

	t.Run("yaml preferred over yml", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		dir := t.TempDir()
		writeConfig(t, dir, "blog.yaml", "title: yaml\n")
		writeConfig(t, dir, "blog.yml", "title: yml\n")

		cfg, err := LoadConfig(dir, "blog")
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Title != "yaml" {
			t.Errorf("Title = %q, want %q", cfg.Title, "yaml")
		}
	})

	t.Run("name falls back to user config dir", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on Linux")
		}
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		writeConfig(t, filepath.Join(home, "go-mdblog"), "blog.yaml", "title: Global\n")

		cfg, err := LoadConfig(t.TempDir(), "blog")
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Title != "Global" {
			t.Errorf("Title = %q, want %q", cfg.Title, "Global")
		}
	})

	t.Run("name not found lists tried paths", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		dir := t.TempDir()

		_, err := LoadConfig(dir, "missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), filepath.Join(dir, "missing.yaml")) {
			t.Errorf("error %q should list the local path", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveDir - Relative directory handling
// ---------------------------------------------------------------------------

func TestResolveDir(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "blog")
	abs := filepath.Join(string(filepath.Separator), "srv", "dist")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"relative", "posts", filepath.Join(root, "posts")},
		{"absolute", abs, abs},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDir(root, tt.path); got != tt.want {
				t.Errorf("ResolveDir(%q, %q) = %q, want %q", root, tt.path, got, tt.want)
			}
		})
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
