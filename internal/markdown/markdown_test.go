package markdown

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	doc, err := r.Render([]byte("---\ntitle: First week\n---\n# Hello\nslept *well*\ntoday"), "day1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if doc.Title != "First week" {
		t.Errorf("title = %q, want First week", doc.Title)
	}
	html := string(doc.HTML)
	if !strings.Contains(html, "<em>well</em>") {
		t.Errorf("expected emphasis in %q", html)
	}
	if !strings.Contains(html, "<br>") {
		t.Errorf("expected hard wrap in %q", html)
	}
	if strings.Contains(html, "title:") {
		t.Errorf("frontmatter leaked into %q", html)
	}
}

func TestRender_FallbackTitleAndRawHTML(t *testing.T) {
	r := NewRenderer()

	doc, err := r.Render([]byte("<script>alert(1)</script>\n\nplain"), "day2")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if doc.Title != "day2" {
		t.Errorf("title = %q, want day2", doc.Title)
	}
	if strings.Contains(string(doc.HTML), "<script>") {
		t.Errorf("raw html passed through: %q", doc.HTML)
	}
}
