package ui

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFlashRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	SetFlash(rec, "Journal saved successfully!")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}

	req := httptest.NewRequest(http.MethodGet, "/view_journals", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()

	msg := ConsumeFlash(rec, req)
	if msg != "Journal saved successfully!" {
		t.Errorf("msg = %q", msg)
	}

	cleared := rec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("expected flash cookie to be cleared, got %+v", cleared)
	}

	if got := ConsumeFlash(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)); got != "" {
		t.Errorf("no cookie: msg = %q", got)
	}
}
