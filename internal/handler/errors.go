package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/momhive/momhive/internal/ctxkeys"
	"github.com/momhive/momhive/internal/ui"
	"github.com/momhive/momhive/internal/ui/pages"
	"github.com/momhive/momhive/internal/validation"
)

// serverError logs err with request context and answers a generic 500
func serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg,
		"error", err,
		"path", r.URL.Path,
		"username", ctxkeys.Username(r.Context()),
		"request_id", ctxkeys.RequestID(r.Context()),
	)
	ui.RenderStatus(w, r, http.StatusInternalServerError, pages.Message("Error", "Something went wrong. Please try again."))
}

// badForm renders the field errors of a *validation.FormError as a 400
func badForm(w http.ResponseWriter, r *http.Request, err error) {
	var fe *validation.FormError
	if !errors.As(err, &fe) {
		serverError(w, r, "unexpected form error", err)
		return
	}

	fields := make([]string, 0, len(fe.Fields))
	for name, msg := range fe.Fields {
		fields = append(fields, name+" "+msg)
	}
	sort.Strings(fields)

	ui.RenderStatus(w, r, http.StatusBadRequest, pages.Message("Invalid input", "Please check your input: "+strings.Join(fields, "; ")+"."))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Warn("failed to encode response", "error", err)
	}
}
