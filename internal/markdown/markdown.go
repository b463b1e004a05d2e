// Package markdown renders journal entries to HTML.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/frontmatter"
)

// Document is a rendered entry. Raw HTML in the source is not passed through.
type Document struct {
	Title string
	HTML  []byte
	Meta  map[string]any
}

type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// journal entries are typed line by line
			goldmarkhtml.WithHardWraps(),
		),
	)

	return &Renderer{md: md}
}

// Render converts source, taking the title from a `title:` frontmatter key
// when present and falling back to fallbackTitle.
func (r *Renderer) Render(source []byte, fallbackTitle string) (*Document, error) {
	ctx := parser.NewContext()
	var buf bytes.Buffer

	err := r.md.Convert(source, &buf, parser.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	meta := map[string]any{}
	if data := frontmatter.Get(ctx); data != nil {
		if err := data.Decode(&meta); err != nil {
			meta = map[string]any{}
		}
	}

	title := fallbackTitle
	if t, ok := meta["title"].(string); ok && strings.TrimSpace(t) != "" {
		title = strings.TrimSpace(t)
	}

	return &Document{
		Title: title,
		HTML:  buf.Bytes(),
		Meta:  meta,
	}, nil
}
