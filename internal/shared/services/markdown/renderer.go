// Package markdown renders user-written text (listing descriptions, email
// bodies) to sanitized HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Renderer interface {
	ToHTML(markdown string) (string, error)
	Sanitize(htmlContent string) string
	// Render converts markdown and strips anything outside the allow list.
	Render(markdown string) (string, error)
}

type renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer builds a renderer for listing descriptions. Line breaks typed by
// sellers are kept and inline images are dropped since listing photos go
// through the upload endpoint.
func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	policy := bluemonday.NewPolicy()
	policy.AllowStandardURLs()
	policy.AllowElements("p", "br", "strong", "em", "del", "ul", "ol", "li",
		"blockquote", "code", "pre", "h1", "h2", "h3", "h4", "h5", "h6", "hr")
	policy.AllowAttrs("href").OnElements("a")
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &renderer{md: md, policy: policy}
}

func (r *renderer) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (r *renderer) Sanitize(htmlContent string) string {
	return r.policy.Sanitize(htmlContent)
}

func (r *renderer) Render(markdown string) (string, error) {
	out, err := r.ToHTML(markdown)
	if err != nil {
		return "", err
	}
	return r.Sanitize(out), nil
}
