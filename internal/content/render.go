package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer sanitises stored HTML and converts generated markdown to safe HTML.
type Renderer struct {
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewRenderer creates a Renderer with a user-generated-content policy.
func NewRenderer() *Renderer {
	// UGCPolicy allows basic formatting like links, lists and headings while stripping scripts.
	return &Renderer{
		markdown:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Sanitize strips unsafe markup from html.
func (r *Renderer) Sanitize(html string) string {
	return r.sanitizer.Sanitize(html)
}

// Markdown converts src to sanitised HTML.
func (r *Renderer) Markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return r.sanitizer.Sanitize(buf.String()), nil
}

// HTML sanitises html and marks it safe for templates.
func (r *Renderer) HTML(html string) template.HTML {
	return template.HTML(r.sanitizer.Sanitize(html))
}
