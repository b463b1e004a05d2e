package pages

import (
	"context"

	"github.com/a-h/templ"
	"github.com/momhive/momhive/internal/markdown"
)

func Journal() templ.Component {
	return Layout("Journal", body(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Write in your journal</h1>`)
		h.raw(`<form method="post" action="/save_journal">`)
		h.raw(csrfField(ctx))
		h.raw(`<label>Title <input type="text" name="filename"></label>`)
		h.raw(`<label>Entry <textarea name="content" rows="12"></textarea></label>`)
		h.raw(`<button type="submit">Save</button></form>`)
	}))
}

func ViewJournals(files []string) templ.Component {
	return Layout("My Journals", body(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>My journals</h1>`)
		if len(files) == 0 {
			h.raw(`<p>No journal entries yet. <a href="/journal">Write one</a>.</p>`)
			return
		}
		h.raw(`<ul class="journals">`)
		for _, f := range files {
			h.rawf(`<li><a href="/view_journal/%s">%s</a> <a class="danger" href="/delete_journal/%s">Delete</a></li>`,
				pathParam(f), esc(f), pathParam(f))
		}
		h.raw(`</ul>`)
	}))
}

// ViewJournal shows one rendered entry. doc.HTML comes from the markdown
// renderer, which drops raw HTML.
func ViewJournal(filename string, doc *markdown.Document) templ.Component {
	return Layout(doc.Title, body(func(ctx context.Context, h *htmlWriter) {
		h.rawf(`<article class="journal"><h1>%s</h1>`, esc(doc.Title))
		h.raw(string(doc.HTML))
		h.raw(`</article>`)
		h.rawf(`<p><a href="/view_journals">Back</a> · <a class="danger" href="/delete_journal/%s">Delete</a></p>`, pathParam(filename))
	}))
}
