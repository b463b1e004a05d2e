package handler

import (
	"net/http"

	"github.com/momhive/momhive/internal/ctxkeys"
	"github.com/momhive/momhive/internal/service"
	"github.com/momhive/momhive/internal/ui"
	"github.com/momhive/momhive/internal/ui/pages"
	"github.com/momhive/momhive/internal/validation"
)

type EPDSHandler struct {
	screeningService *service.ScreeningService
}

func NewEPDSHandler(screeningService *service.ScreeningService) *EPDSHandler {
	return &EPDSHandler{screeningService: screeningService}
}

func (h *EPDSHandler) EPDSPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.EPDS(""))
}

func (h *EPDSHandler) Submit(w http.ResponseWriter, r *http.Request) {
	form, err := validation.ParseEPDSForm(r)
	if err != nil {
		badForm(w, r, err)
		return
	}

	result, err := h.screeningService.Score(ctxkeys.Username(r.Context()), form.Answers)
	if err != nil {
		serverError(w, r, "failed to score screening", err)
		return
	}

	ui.Render(w, r, pages.EPDS(result.Message()))
}
