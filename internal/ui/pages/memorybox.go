package pages

import (
	"context"

	"github.com/a-h/templ"
	"github.com/momhive/momhive/internal/model"
)

func MemoryBox(photos []*model.Photo, uploadErr string) templ.Component {
	return Layout("Memory Box", body(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Memory box</h1>`)
		h.raw(`<form method="post" action="/memory_box" enctype="multipart/form-data">`)
		h.raw(csrfField(ctx))
		h.raw(`<input type="file" name="photo" accept="image/*">`)
		h.raw(`<button type="submit">Upload</button></form>`)
		if uploadErr != "" {
			h.rawf(`<p class="error">%s</p>`, esc(uploadErr))
		}

		if len(photos) == 0 {
			h.raw(`<p>No photos yet.</p>`)
			return
		}
		h.raw(`<div class="gallery">`)
		for _, p := range photos {
			h.rawf(`<figure><img src="%s" alt="%s" loading="lazy"><figcaption>%s</figcaption></figure>`,
				esc(p.URL), esc(p.Filename), esc(p.Filename))
		}
		h.raw(`</div>`)
	}))
}
