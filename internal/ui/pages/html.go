package pages

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
	"github.com/momhive/momhive/internal/ctxkeys"
)

// htmlWriter keeps the first write error so page bodies read top to bottom
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// rawf formats trusted markup; escape arguments with esc
func (h *htmlWriter) rawf(format string, args ...any) {
	if h.err == nil {
		_, h.err = fmt.Fprintf(h.w, format, args...)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// pathParam escapes a single path segment for use inside an href
func pathParam(s string) string {
	return esc(url.PathEscape(s))
}

func csrfField(ctx context.Context) string {
	return fmt.Sprintf(`<input type="hidden" name="csrf_token" value="%s">`, esc(ctxkeys.CSRFToken(ctx)))
}

// body builds a component from a function writing into an htmlWriter
func body(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}
