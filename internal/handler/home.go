package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/momhive/momhive/internal/ctxkeys"
	"github.com/momhive/momhive/internal/service"
	"github.com/momhive/momhive/internal/ui"
	"github.com/momhive/momhive/internal/ui/pages"
)

type HomeHandler struct {
	moodService      *service.MoodService
	screeningService *service.ScreeningService
}

func NewHomeHandler(moodService *service.MoodService, screeningService *service.ScreeningService) *HomeHandler {
	return &HomeHandler{
		moodService:      moodService,
		screeningService: screeningService,
	}
}

func (h *HomeHandler) IndexPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Index())
}

// HomePage shows the latest EPDS score, latest mood and the recent trend
func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	username := ctxkeys.Username(r.Context())
	data := pages.HomeData{Username: username}

	screening, err := h.screeningService.Latest(username)
	switch {
	case err == nil:
		data.EPDSScore = strconv.Itoa(screening.Score)
	case !errors.Is(err, service.ErrNoScreeningData):
		serverError(w, r, "failed to load latest screening", err)
		return
	}

	mood, err := h.moodService.Latest(username)
	switch {
	case err == nil:
		data.MoodScore = strconv.Itoa(mood.Mood)
	case !errors.Is(err, service.ErrNoMoodData):
		serverError(w, r, "failed to load latest mood", err)
		return
	}

	trend, err := h.moodService.RenderTrend(username, service.HomeTrendLimit)
	switch {
	case err == nil:
		data.TrendURL = trend.URL
	case !errors.Is(err, service.ErrNoMoodData):
		// the page is still useful without the chart
		slog.Error("failed to render home trend", "error", err, "username", username)
	}

	ui.Render(w, r, pages.Home(data))
}

func (h *HomeHandler) MusicPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Music())
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
}
