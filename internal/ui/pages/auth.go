package pages

import (
	"context"

	"github.com/a-h/templ"
)

func Index() templ.Component {
	return Layout("Welcome", body(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="hero"><h1>Welcome to MomHive</h1>`)
		h.raw(`<p>Track your mood, check in with the EPDS questionnaire, keep a journal and save your favourite memories.</p>`)
		h.raw(`<p><a class="button" href="/signup">Get started</a> <a class="button secondary" href="/login">I have an account</a></p></section>`)
	}))
}

// Signup renders the registration form; errs maps field names to messages
func Signup(errs map[string]string) templ.Component {
	return Layout("Sign up", body(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Create your account</h1>`)
		h.raw(`<form method="post" action="/signup">`)
		h.raw(csrfField(ctx))
		field := func(name, label, typ string) {
			h.rawf(`<label>%s <input type="%s" name="%s"></label>`, esc(label), typ, name)
			if msg := errs[name]; msg != "" {
				h.rawf(`<span class="error">%s %s</span>`, esc(label), esc(msg))
			}
		}
		field("name", "Username", "text")
		field("age", "Age", "number")
		field("gender", "Gender", "text")
		field("address", "Address", "text")
		h.raw(`<label><input type="checkbox" name="married" value="Yes"> Married</label>`)
		h.raw(`<label><input type="checkbox" name="working" value="Yes"> Working</label>`)
		field("contact", "Contact", "tel")
		field("partner", "Partner", "text")
		field("dob", "Date of birth", "date")
		field("password", "Password", "password")
		h.raw(`<button type="submit">Sign up</button></form>`)
	}))
}

func Login() templ.Component {
	return Layout("Login", body(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Login</h1>`)
		h.raw(`<form method="post" action="/login">`)
		h.raw(csrfField(ctx))
		h.raw(`<label>Username <input type="text" name="username" required></label>`)
		h.raw(`<label>Password <input type="password" name="password" required></label>`)
		h.raw(`<button type="submit">Login</button></form>`)
	}))
}
