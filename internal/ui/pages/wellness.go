package pages

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/templ"
)

// HomeData feeds the dashboard. Empty strings render as "No Data".
type HomeData struct {
	Username  string
	EPDSScore string
	MoodScore string
	TrendURL  string
}

func orNoData(s string) string {
	if s == "" {
		return "No Data"
	}
	return s
}

func Home(d HomeData) templ.Component {
	return Layout("Home", body(func(ctx context.Context, h *htmlWriter) {
		h.rawf(`<h1>Hello, %s</h1>`, esc(d.Username))
		h.raw(`<div class="cards">`)
		h.rawf(`<div class="card"><h2>Latest EPDS score</h2><p class="score">%s</p><a href="/epds">Take the test</a></div>`, esc(orNoData(d.EPDSScore)))
		h.rawf(`<div class="card"><h2>Latest mood</h2><p class="score">%s</p><a href="/mood_tracker">Log your mood</a></div>`, esc(orNoData(d.MoodScore)))
		h.raw(`</div>`)
		if d.TrendURL != "" {
			h.rawf(`<section><h2>Recent mood trend</h2><img src="%s" alt="Mood trend chart"></section>`, esc(d.TrendURL))
		}
	}))
}

type epdsQuestion struct {
	Text    string
	Options []string // listed in display order
	Reverse bool     // first option scores 3
}

var epdsQuestions = []epdsQuestion{
	{"I have been able to laugh and see the funny side of things", []string{"As much as I always could", "Not quite so much now", "Definitely not so much now", "Not at all"}, false},
	{"I have looked forward with enjoyment to things", []string{"As much as I ever did", "Rather less than I used to", "Definitely less than I used to", "Hardly at all"}, false},
	{"I have blamed myself unnecessarily when things went wrong", []string{"Yes, most of the time", "Yes, some of the time", "Not very often", "No, never"}, true},
	{"I have been anxious or worried for no good reason", []string{"No, not at all", "Hardly ever", "Yes, sometimes", "Yes, very often"}, false},
	{"I have felt scared or panicky for no very good reason", []string{"Yes, quite a lot", "Yes, sometimes", "No, not much", "No, not at all"}, true},
	{"Things have been getting on top of me", []string{"Yes, most of the time I haven't been able to cope at all", "Yes, sometimes I haven't been coping as well as usual", "No, most of the time I have coped quite well", "No, I have been coping as well as ever"}, true},
	{"I have been so unhappy that I have had difficulty sleeping", []string{"Yes, most of the time", "Yes, sometimes", "Not very often", "No, not at all"}, true},
	{"I have felt sad or miserable", []string{"Yes, most of the time", "Yes, quite often", "Not very often", "No, not at all"}, true},
	{"I have been so unhappy that I have been crying", []string{"Yes, most of the time", "Yes, quite often", "Only occasionally", "No, never"}, true},
	{"The thought of harming myself has occurred to me", []string{"Yes, quite often", "Sometimes", "Hardly ever", "Never"}, true},
}

// EPDS renders the questionnaire, and the outcome once one is available
func EPDS(result string) templ.Component {
	return Layout("EPDS Test", body(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Edinburgh Postnatal Depression Scale</h1>`)
		if result != "" {
			h.rawf(`<div class="result"><h2>Result</h2><p>%s</p></div>`, esc(result))
		}
		h.raw(`<p>In the past 7 days:</p>`)
		h.raw(`<form method="post" action="/epds">`)
		h.raw(csrfField(ctx))
		for i, q := range epdsQuestions {
			name := fmt.Sprintf("q%d", i+1)
			h.rawf(`<fieldset><legend>%d. %s</legend>`, i+1, esc(q.Text))
			for j, opt := range q.Options {
				value := j
				if q.Reverse {
					value = 3 - j
				}
				h.rawf(`<label><input type="radio" name="%s" value="%s" required> %s</label>`,
					name, strconv.Itoa(value), esc(opt))
			}
			h.raw(`</fieldset>`)
		}
		h.raw(`<button type="submit">Submit</button></form>`)
	}))
}

func MoodTracker() templ.Component {
	return Layout("Mood Tracker", body(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>How are you feeling today?</h1>`)
		h.raw(`<form method="post" action="/mood_tracker">`)
		h.raw(csrfField(ctx))
		h.raw(`<label>Mood (1 = very low, 10 = great) <input type="number" name="mood" min="1" max="10" required></label>`)
		h.raw(`<button type="submit">Save mood</button></form>`)
	}))
}

func MoodGraph(chartURL string) templ.Component {
	return Layout("Mood Graph", body(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Your mood over time</h1>`)
		h.rawf(`<img src="%s" alt="Mood history chart">`, esc(chartURL))
		h.raw(`<p><a href="/mood_tracker">Log another mood</a></p>`)
	}))
}

var tracks = []struct {
	Title string
	URL   string
}{
	{"Calm piano for new mothers", "https://www.youtube.com/results?search_query=calm+piano+relaxing"},
	{"Lullabies for baby and you", "https://www.youtube.com/results?search_query=lullabies+for+babies"},
	{"Guided breathing meditation", "https://www.youtube.com/results?search_query=guided+breathing+meditation"},
	{"Nature sounds for sleep", "https://www.youtube.com/results?search_query=nature+sounds+sleep"},
}

func Music() templ.Component {
	return Layout("Music", body(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Music to relax</h1><ul class="tracks">`)
		for _, t := range tracks {
			h.rawf(`<li><a href="%s" target="_blank" rel="noopener">%s</a></li>`, esc(t.URL), esc(t.Title))
		}
		h.raw(`</ul>`)
	}))
}
