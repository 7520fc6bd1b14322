package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/alnah/go-mdblog/internal/dateutil"
	"github.com/alnah/go-mdblog/internal/theme"
)

// Sentinel errors for template operations.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateParse    = errors.New("failed to parse template")
	ErrTemplateExecute  = errors.New("failed to execute template")
)

// Templates holds one parsed html/template per page template. Every page
// template is parsed together with all partials of the theme.
// Safe for concurrent use once loaded.
type Templates struct {
	pages map[string]*template.Template
}

// LoadTemplates parses the theme templates. dateFormat is a dateutil format
// or preset used by the formatDate template function.
func LoadTemplates(loader theme.Loader, dateFormat string) (*Templates, error) {
	layout, err := dateutil.Layout(dateFormat)
	if err != nil {
		return nil, err
	}

	names, err := loader.ListTemplates()
	if err != nil {
		return nil, err
	}

	partials := make(map[string]string)
	var pages []string
	for _, name := range names {
		if !theme.IsPartial(name) {
			pages = append(pages, name)
			continue
		}
		content, err := loader.LoadTemplate(name)
		if err != nil {
			return nil, err
		}
		partials[name] = content
	}

	funcs := templateFuncs(layout)
	t := &Templates{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		content, err := loader.LoadTemplate(name)
		if err != nil {
			return nil, err
		}

		page, err := template.New(name).Funcs(funcs).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
		}
		for partial, partialContent := range partials {
			if _, err := page.New(partial).Parse(partialContent); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, partial, err)
			}
		}
		t.pages[name] = page
	}

	return t, nil
}

// Execute renders the named page template with model.
func (t *Templates) Execute(name string, model HasBlogConfig) (string, error) {
	page, ok := t.pages[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, model); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateExecute, name, err)
	}
	return buf.String(), nil
}

func templateFuncs(dateLayout string) template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format(dateLayout)
		},
		// Rendered post HTML is trusted output of the Markdown renderer.
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s) // #nosec G203
		},
		"join": func(sep string, items []string) string {
			return strings.Join(items, sep)
		},
		"tagURL": TagURL,
		"year": func(t time.Time) int {
			return t.Year()
		},
	}
}
