package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/momhive/momhive/internal/service"
	"github.com/momhive/momhive/internal/ui"
	"github.com/momhive/momhive/internal/ui/pages"
	"github.com/momhive/momhive/internal/validation"
)

const (
	msgUsernameTaken      = "Username already exists! Try another one."
	msgInvalidCredentials = "Invalid Credentials! Try Again."
)

type authHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *authHandler {
	return &authHandler{authService: authService}
}

func (h *authHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Signup(nil))
}

func (h *authHandler) Signup(w http.ResponseWriter, r *http.Request) {
	form, err := validation.ParseSignupForm(r)
	if err != nil {
		var fe *validation.FormError
		if errors.As(err, &fe) {
			ui.RenderStatus(w, r, http.StatusBadRequest, pages.Signup(fe.Fields))
			return
		}
		serverError(w, r, "failed to parse signup form", err)
		return
	}

	user, err := h.authService.Signup(form)
	if errors.Is(err, service.ErrUsernameTaken) {
		ui.RenderStatus(w, r, http.StatusConflict, pages.Message("Sign up", msgUsernameTaken))
		return
	}
	if errors.Is(err, validation.ErrPasswordTooLong) {
		ui.RenderStatus(w, r, http.StatusBadRequest, pages.Signup(map[string]string{"password": "must not exceed 72 bytes"}))
		return
	}
	if err != nil {
		serverError(w, r, "failed to sign up", err)
		return
	}

	err = h.authService.StartSession(w, user.Username)
	if err != nil {
		serverError(w, r, "failed to start session", err)
		return
	}

	slog.Info("user signed up", "username", user.Username)
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (h *authHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Login())
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	form, err := validation.ParseLoginForm(r)
	if err != nil {
		badForm(w, r, err)
		return
	}

	user, err := h.authService.Login(form.Username, form.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		ui.RenderStatus(w, r, http.StatusUnauthorized, pages.Message("Login", msgInvalidCredentials))
		return
	}
	if err != nil {
		serverError(w, r, "failed to log in", err)
		return
	}

	err = h.authService.StartSession(w, user.Username)
	if err != nil {
		serverError(w, r, "failed to start session", err)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearSession(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
