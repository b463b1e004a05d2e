package pages

import (
	"context"

	"github.com/a-h/templ"
	"github.com/momhive/momhive/internal/ctxkeys"
)

var navLinks = []struct {
	Href  string
	Label string
}{
	{"/home", "Home"},
	{"/epds", "EPDS Test"},
	{"/mood_tracker", "Mood Tracker"},
	{"/memory_box", "Memory Box"},
	{"/journal", "Journal"},
	{"/view_journals", "My Journals"},
	{"/music", "Music"},
}

// Layout wraps content in the shared shell: nav, flash banner, footer
func Layout(title string, content templ.Component) templ.Component {
	return body(func(ctx context.Context, h *htmlWriter) {
		appName := "MomHive"
		if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppName != "" {
			appName = cfg.AppName
		}

		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.rawf(`<title>%s | %s</title>`, esc(title), esc(appName))
		h.raw(`<link rel="stylesheet" href="/assets/css/style.css">`)
		h.raw(`</head><body>`)

		h.rawf(`<header class="nav"><a class="brand" href="/">%s</a><nav>`, esc(appName))
		username := ctxkeys.Username(ctx)
		if username != "" {
			path := ctxkeys.URLPath(ctx)
			for _, l := range navLinks {
				class := ""
				if l.Href == path {
					class = ` class="active"`
				}
				h.rawf(`<a href="%s"%s>%s</a>`, l.Href, class, esc(l.Label))
			}
			h.rawf(`<form method="post" action="/logout" class="inline">%s<button type="submit">Log out (%s)</button></form>`,
				csrfField(ctx), esc(username))
		} else {
			h.raw(`<a href="/login">Login</a><a href="/signup">Sign up</a>`)
		}
		h.raw(`</nav></header>`)

		if msg := ctxkeys.Flash(ctx); msg != "" {
			h.rawf(`<div class="flash" role="status">%s</div>`, esc(msg))
		}

		h.raw(`<main>`)
		h.component(ctx, content)
		h.raw(`</main>`)
		h.rawf(`<footer><p>%s, a little support every day.</p></footer>`, esc(appName))
		h.raw(`</body></html>`)
	})
}

// Message is a bare page carrying one line of text
func Message(title, msg string) templ.Component {
	return Layout(title, body(func(ctx context.Context, h *htmlWriter) {
		h.rawf(`<p class="message">%s</p>`, esc(msg))
	}))
}

func NotFound() templ.Component {
	return Message("Not found", "Page not found.")
}
