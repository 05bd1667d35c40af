// Package render turns CMS markdown into sanitized HTML for templates.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	// UGC policy: article bodies come from the CMS but may embed author
	// supplied HTML, so they go through the sanitizer regardless.
	policy = bluemonday.UGCPolicy().AllowAttrs("class").OnElements("img", "figure", "blockquote")
)

// Markdown renders source markdown to sanitized HTML.
func Markdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render: markdown convert: %w", err)
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}

// MarkdownOrRaw renders markdown, degrading to the escaped source text when
// conversion fails so a bad article body never breaks the page.
func MarkdownOrRaw(source string) template.HTML {
	out, err := Markdown(source)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return out
}
