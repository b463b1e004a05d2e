package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/momhive/momhive/internal/ctxkeys"
	"github.com/momhive/momhive/internal/markdown"
	"github.com/momhive/momhive/internal/model"
	"github.com/momhive/momhive/internal/service"
	"github.com/momhive/momhive/internal/ui"
	"github.com/momhive/momhive/internal/ui/pages"
	"github.com/momhive/momhive/internal/validation"
)

const (
	msgFilenameRequired = "Filename cannot be empty!"
	msgJournalSaved     = "Journal saved successfully!"
	msgFileNotFound     = "File not found!"
	msgJournalDeleted   = "Journal deleted successfully!"
)

type JournalHandler struct {
	journalService *service.JournalService
	renderer       *markdown.Renderer
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
		renderer:       markdown.NewRenderer(),
	}
}

func (h *JournalHandler) JournalPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Journal())
}

func (h *JournalHandler) Save(w http.ResponseWriter, r *http.Request) {
	form, err := validation.ParseJournalForm(r)
	if err != nil {
		badForm(w, r, err)
		return
	}

	_, err = h.journalService.Save(ctxkeys.Username(r.Context()), form.Filename, form.Content)
	if errors.Is(err, service.ErrJournalFilenameRequired) {
		ui.SetFlash(w, msgFilenameRequired)
		http.Redirect(w, r, "/journal", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, r, "failed to save journal", err)
		return
	}

	ui.SetFlash(w, msgJournalSaved)
	http.Redirect(w, r, "/view_journals", http.StatusSeeOther)
}

func (h *JournalHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	files, err := h.journalService.List(ctxkeys.Username(r.Context()))
	if err != nil {
		serverError(w, r, "failed to list journals", err)
		return
	}

	ui.Render(w, r, pages.ViewJournals(files))
}

func (h *JournalHandler) ViewPage(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	entry, err := h.journalService.Read(ctxkeys.Username(r.Context()), filename)
	if errors.Is(err, service.ErrJournalNotFound) {
		ui.SetFlash(w, msgFileNotFound)
		http.Redirect(w, r, "/view_journals", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, r, "failed to read journal", err)
		return
	}

	doc, err := h.renderer.Render([]byte(entry.Content), strings.TrimSuffix(filename, model.JournalExt))
	if err != nil {
		serverError(w, r, "failed to render journal", err)
		return
	}

	ui.Render(w, r, pages.ViewJournal(filename, doc))
}

// Delete is a GET so the plain links in the journal list keep working
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	err := h.journalService.Delete(ctxkeys.Username(r.Context()), filename)
	switch {
	case errors.Is(err, service.ErrJournalNotFound):
		ui.SetFlash(w, msgFileNotFound)
	case err != nil:
		serverError(w, r, "failed to delete journal", err)
		return
	default:
		ui.SetFlash(w, msgJournalDeleted)
	}

	http.Redirect(w, r, "/view_journals", http.StatusSeeOther)
}
