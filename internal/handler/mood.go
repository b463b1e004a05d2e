package handler

import (
	"errors"
	"net/http"

	"github.com/momhive/momhive/internal/ctxkeys"
	"github.com/momhive/momhive/internal/service"
	"github.com/momhive/momhive/internal/ui"
	"github.com/momhive/momhive/internal/ui/pages"
	"github.com/momhive/momhive/internal/validation"
)

const msgNoMoodData = "No mood data available."

type MoodHandler struct {
	moodService *service.MoodService
}

func NewMoodHandler(moodService *service.MoodService) *MoodHandler {
	return &MoodHandler{moodService: moodService}
}

func (h *MoodHandler) TrackerPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.MoodTracker())
}

func (h *MoodHandler) Record(w http.ResponseWriter, r *http.Request) {
	form, err := validation.ParseMoodForm(r)
	if err != nil {
		badForm(w, r, err)
		return
	}

	_, err = h.moodService.Record(ctxkeys.Username(r.Context()), form.Mood)
	if err != nil {
		serverError(w, r, "failed to record mood", err)
		return
	}

	http.Redirect(w, r, "/mood_graph", http.StatusSeeOther)
}

// GraphPage plots the full history
func (h *MoodHandler) GraphPage(w http.ResponseWriter, r *http.Request) {
	trend, err := h.moodService.RenderTrend(ctxkeys.Username(r.Context()), 0)
	if errors.Is(err, service.ErrNoMoodData) {
		ui.Render(w, r, pages.Message("Mood Graph", msgNoMoodData))
		return
	}
	if err != nil {
		serverError(w, r, "failed to render mood graph", err)
		return
	}

	ui.Render(w, r, pages.MoodGraph(trend.URL))
}
