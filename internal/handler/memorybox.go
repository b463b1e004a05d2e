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

type MemoryBoxHandler struct {
	memoryBoxService *service.MemoryBoxService
}

func NewMemoryBoxHandler(memoryBoxService *service.MemoryBoxService) *MemoryBoxHandler {
	return &MemoryBoxHandler{memoryBoxService: memoryBoxService}
}

func (h *MemoryBoxHandler) MemoryBoxPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "")
}

// Upload saves the posted photo, if any, then lists the box. The body is
// already capped by middleware.BodyLimit.
func (h *MemoryBoxHandler) Upload(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(validation.PhotoConstraints.MaxSize)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.render(w, r, http.StatusBadRequest, "Upload failed: the file is too large or malformed.")
		return
	}

	_, header, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) || (err == nil && header.Filename == "" && header.Size == 0) {
		h.render(w, r, http.StatusOK, "")
		return
	}
	if err != nil {
		h.render(w, r, http.StatusBadRequest, "Upload failed: the file could not be read.")
		return
	}

	_, err = h.memoryBoxService.Upload(ctxkeys.Username(r.Context()), header)
	if errors.Is(err, service.ErrInvalidPhoto) {
		h.render(w, r, http.StatusBadRequest, "Please upload a JPEG, PNG, GIF or WebP image up to 5 MB.")
		return
	}
	if err != nil {
		serverError(w, r, "failed to upload photo", err)
		return
	}

	h.render(w, r, http.StatusOK, "")
}

func (h *MemoryBoxHandler) render(w http.ResponseWriter, r *http.Request, status int, uploadErr string) {
	photos, err := h.memoryBoxService.Photos(ctxkeys.Username(r.Context()))
	if err != nil {
		serverError(w, r, "failed to list photos", err)
		return
	}
	ui.RenderStatus(w, r, status, pages.MemoryBox(photos, uploadErr))
}
