package validation

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FormError lists the fields of a request that failed to parse or validate
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

func (e *FormError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

func (e *FormError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

type SignupForm struct {
	Username string `form:"name" validate:"required,max=100"`
	Age      int    `form:"age" validate:"gte=0,lte=130"`
	Gender   string `form:"gender" validate:"max=50"`
	Address  string `form:"address" validate:"max=500"`
	Married  bool   `form:"married"`
	Working  bool   `form:"working"`
	Contact  string `form:"contact" validate:"max=50"`
	Partner  string `form:"partner" validate:"max=100"`
	DOB      string `form:"dob" validate:"omitempty,datetime=2006-01-02"`
	Password string `form:"password" validate:"required,max=72"`
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type MoodForm struct {
	Mood int `form:"mood"`
}

type EPDSForm struct {
	Answers [10]int `validate:"dive,gte=0,lte=3"`
}

// JournalForm keeps an empty filename valid so the caller can flash it
type JournalForm struct {
	Filename string `form:"filename"`
	Content  string `form:"content"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

func ParseSignupForm(r *http.Request) (*SignupForm, error) {
	fe := &FormError{}
	if err := r.ParseForm(); err != nil {
		fe.add("form", "could not be parsed")
		return nil, fe
	}

	f := &SignupForm{
		Username: strings.TrimSpace(r.PostFormValue("name")),
		Gender:   strings.TrimSpace(r.PostFormValue("gender")),
		Address:  strings.TrimSpace(r.PostFormValue("address")),
		Married:  parseCheckbox(r.PostFormValue("married")),
		Working:  parseCheckbox(r.PostFormValue("working")),
		Contact:  strings.TrimSpace(r.PostFormValue("contact")),
		Partner:  strings.TrimSpace(r.PostFormValue("partner")),
		DOB:      strings.TrimSpace(r.PostFormValue("dob")),
		Password: r.PostFormValue("password"),
	}

	if v := strings.TrimSpace(r.PostFormValue("age")); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			fe.add("age", "must be a whole number")
		}
		f.Age = age
	}

	collect(fe, f)
	if err := fe.orNil(); err != nil {
		return nil, err
	}
	return f, nil
}

func ParseLoginForm(r *http.Request) (*LoginForm, error) {
	fe := &FormError{}
	if err := r.ParseForm(); err != nil {
		fe.add("form", "could not be parsed")
		return nil, fe
	}

	f := &LoginForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}

	collect(fe, f)
	if err := fe.orNil(); err != nil {
		return nil, err
	}
	return f, nil
}

func ParseMoodForm(r *http.Request) (*MoodForm, error) {
	fe := &FormError{}
	if err := r.ParseForm(); err != nil {
		fe.add("form", "could not be parsed")
		return nil, fe
	}

	v := strings.TrimSpace(r.PostFormValue("mood"))
	if v == "" {
		fe.add("mood", "is required")
		return nil, fe
	}
	mood, err := strconv.Atoi(v)
	if err != nil {
		fe.add("mood", "must be a whole number")
		return nil, fe
	}

	return &MoodForm{Mood: mood}, nil
}

// ParseEPDSForm reads the ten answers q1..q10
func ParseEPDSForm(r *http.Request) (*EPDSForm, error) {
	fe := &FormError{}
	if err := r.ParseForm(); err != nil {
		fe.add("form", "could not be parsed")
		return nil, fe
	}

	f := &EPDSForm{}
	for i := range f.Answers {
		name := fmt.Sprintf("q%d", i+1)
		v := strings.TrimSpace(r.PostFormValue(name))
		if v == "" {
			fe.add(name, "is required")
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			fe.add(name, "must be a whole number")
			continue
		}
		f.Answers[i] = n
	}
	if err := fe.orNil(); err != nil {
		return nil, err
	}

	err := validate.Struct(f)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range verrs {
			// Namespace is EPDSForm.Answers[i]
			idx := strings.TrimSuffix(strings.TrimPrefix(fieldErr.Field(), "Answers["), "]")
			n, _ := strconv.Atoi(idx)
			fe.add(fmt.Sprintf("q%d", n+1), "must be between 0 and 3")
		}
	}
	if err := fe.orNil(); err != nil {
		return nil, err
	}
	return f, nil
}

func ParseJournalForm(r *http.Request) (*JournalForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, &FormError{Fields: map[string]string{"form": "could not be parsed"}}
	}

	return &JournalForm{
		Filename: strings.TrimSpace(r.PostFormValue("filename")),
		Content:  r.PostFormValue("content"),
	}, nil
}

// ValidateChatRequest checks a decoded chat body
func ValidateChatRequest(req *ChatRequest) error {
	fe := &FormError{}
	req.Message = strings.TrimSpace(req.Message)
	collect(fe, req)
	return fe.orNil()
}

func parseCheckbox(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes", "true", "1":
		return true
	}
	return false
}

// collect runs struct validation and records failures under the form field name
func collect(fe *FormError, s any) {
	err := validate.Struct(s)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fe.add("form", err.Error())
		return
	}
	for _, fieldErr := range verrs {
		fe.add(fieldName(s, fieldErr.StructField()), message(fieldErr))
	}
}

func message(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "max":
		return "is too long (max " + fieldErr.Param() + ")"
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "lte":
		return "must be at most " + fieldErr.Param()
	case "datetime":
		return "must be a date (YYYY-MM-DD)"
	}
	return "is invalid"
}
