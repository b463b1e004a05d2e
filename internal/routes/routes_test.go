package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/momhive/momhive/internal/app"
	"github.com/momhive/momhive/internal/config"
	"github.com/momhive/momhive/internal/db"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	static := filepath.Join(dir, "static")
	return &config.Config{
		AppName:       "MomHive",
		AppEnv:        "test",
		SessionSecret: "test-secret",
		SessionExpiry: time.Hour,
		StaticDir:     static,
		ChartDir:      filepath.Join(static, "charts"),
		JournalDir:    filepath.Join(dir, "journals"),
		StorageDriver: config.StorageDriverLocal,
		UploadDir:     filepath.Join(static, "uploads"),
	}
}

// client drives the app through a real server with a cookie jar
type client struct {
	t    *testing.T
	srv  *httptest.Server
	http *http.Client
}

func newClient(t *testing.T) *client {
	t.Helper()

	cfg := testConfig(t)
	database, err := db.Open("sqlite", filepath.Join(t.TempDir(), "app.db")+"?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	a, err := app.NewWithDB(cfg, database)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	srv := httptest.NewServer(SetupRoutes(a))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}

	return &client{
		t:   t,
		srv: srv,
		http: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *client) cookie(name string) string {
	u, _ := url.Parse(c.srv.URL)
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}

func (c *client) get(path string) (*http.Response, string) {
	c.t.Helper()

	resp, err := c.http.Get(c.srv.URL + path)
	if err != nil {
		c.t.Fatalf("GET %s: %v", path, err)
	}
	return resp, readBody(c.t, resp)
}

// post submits a form with the current CSRF token
func (c *client) post(path string, form url.Values) (*http.Response, string) {
	c.t.Helper()

	if c.cookie("csrf_token") == "" {
		c.get("/login")
	}
	if form == nil {
		form = url.Values{}
	}
	form.Set("csrf_token", c.cookie("csrf_token"))

	resp, err := c.http.PostForm(c.srv.URL+path, form)
	if err != nil {
		c.t.Fatalf("POST %s: %v", path, err)
	}
	return resp, readBody(c.t, resp)
}

func (c *client) signup(username string) {
	c.t.Helper()

	resp, body := c.post("/signup", url.Values{
		"name":     {username},
		"age":      {"31"},
		"password": {"pw-" + username},
	})
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/home" {
		c.t.Fatalf("signup %q: status %d location %q body %s", username, resp.StatusCode, resp.Header.Get("Location"), body)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func TestGatedRoutesRedirectToLogin(t *testing.T) {
	c := newClient(t)

	for _, path := range []string{"/home", "/epds", "/mood_tracker", "/mood_graph", "/memory_box", "/journal", "/view_journals", "/view_journal/a.md", "/delete_journal/a.md"} {
		resp, _ := c.get(path)
		if resp.StatusCode != http.StatusSeeOther {
			t.Errorf("GET %s: status %d, want 303", path, resp.StatusCode)
			continue
		}
		if loc := resp.Header.Get("Location"); loc != "/login" {
			t.Errorf("GET %s: location %q, want /login", path, loc)
		}
	}
}

func TestPublicPages(t *testing.T) {
	c := newClient(t)

	for _, path := range []string{"/", "/signup", "/login", "/music", "/assets/css/style.css"} {
		resp, _ := c.get(path)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: status %d, want 200", path, resp.StatusCode)
		}
	}

	resp, _ := c.get("/no/such/page")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown path: status %d, want 404", resp.StatusCode)
	}

	resp, _ = c.get("/static/")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("static listing: status %d, want 404", resp.StatusCode)
	}
}

func TestPostWithoutCSRFIsRejected(t *testing.T) {
	c := newClient(t)

	resp, err := c.http.PostForm(c.srv.URL+"/login", url.Values{"username": {"ana"}, "password": {"x"}})
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status %d, want 403", resp.StatusCode)
	}
}

func TestSignupLoginLogout(t *testing.T) {
	c := newClient(t)
	c.signup("ana")

	resp, body := c.get("/home")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("home: status %d", resp.StatusCode)
	}
	if !strings.Contains(body, "No Data") {
		t.Error("home should show No Data before any entries")
	}
	if !strings.Contains(body, "Log out (ana)") {
		t.Error("home should show the logged in user")
	}

	resp, _ = c.post("/logout", nil)
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/" {
		t.Fatalf("logout: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	resp, _ = c.get("/home")
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("home after logout: status %d, want 303", resp.StatusCode)
	}

	resp, body = c.post("/login", url.Values{"username": {"ana"}, "password": {"wrong"}})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad login: status %d, want 401", resp.StatusCode)
	}
	if !strings.Contains(body, "Invalid Credentials! Try Again.") {
		t.Error("bad login should explain the failure")
	}

	resp, _ = c.post("/login", url.Values{"username": {"ana"}, "password": {"pw-ana"}})
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/home" {
		t.Fatalf("login: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	resp, _ = c.get("/home")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("home after login: status %d", resp.StatusCode)
	}
}

func TestSignupDuplicateAndInvalid(t *testing.T) {
	c := newClient(t)
	c.signup("ana")

	other := newClientFrom(t, c)
	resp, _ := other.post("/signup", url.Values{"name": {"ana"}, "password": {"another"}})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate signup: status %d, want 409", resp.StatusCode)
	}

	resp, _ = other.post("/signup", url.Values{"name": {""}, "password": {"pw"}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing name: status %d, want 400", resp.StatusCode)
	}

	resp, _ = other.post("/signup", url.Values{"name": {"bo"}, "password": {"pw"}, "dob": {"31/12/1990"}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad dob: status %d, want 400", resp.StatusCode)
	}
}

// newClientFrom shares the server of c but starts with an empty jar
func newClientFrom(t *testing.T, c *client) *client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &client{
		t:   t,
		srv: c.srv,
		http: &http.Client{
			Jar:           jar,
			CheckRedirect: c.http.CheckRedirect,
		},
	}
}

func TestMoodTrackerAndGraph(t *testing.T) {
	c := newClient(t)
	c.signup("ana")

	_, body := c.get("/mood_graph")
	if !strings.Contains(body, "No mood data available.") {
		t.Error("empty graph should say there is no data")
	}

	for _, mood := range []string{"3", "7", "5"} {
		resp, _ := c.post("/mood_tracker", url.Values{"mood": {mood}})
		if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/mood_graph" {
			t.Fatalf("record mood: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
		}
	}

	resp, body := c.get("/mood_graph")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("graph: status %d", resp.StatusCode)
	}
	start := strings.Index(body, `src="/static/charts/`)
	if start < 0 {
		t.Fatalf("graph page has no chart image: %s", body)
	}
	src := body[start+len(`src="`):]
	src = src[:strings.Index(src, `"`)]
	src = strings.ReplaceAll(src, "&amp;", "&")

	resp, png := c.get(src)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("chart %s: status %d", src, resp.StatusCode)
	}
	if !strings.HasPrefix(png, "\x89PNG") {
		t.Error("chart is not a PNG")
	}

	_, body = c.get("/home")
	if !strings.Contains(body, `<p class="score">5</p>`) {
		t.Error("home should show the latest mood")
	}

	resp, _ = c.post("/mood_tracker", url.Values{"mood": {"happy"}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("non numeric mood: status %d, want 400", resp.StatusCode)
	}
}

func TestEPDS(t *testing.T) {
	c := newClient(t)
	c.signup("ana")

	form := url.Values{}
	for i := 1; i <= 10; i++ {
		form.Set("q"+strconv.Itoa(i), "0")
	}
	resp, body := c.post("/epds", form)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("epds: status %d", resp.StatusCode)
	}
	if !strings.Contains(body, "You are good") {
		t.Error("all zero answers should be reported as good")
	}

	_, body = c.get("/home")
	if !strings.Contains(body, `<p class="score">0</p>`) {
		t.Error("home should show the latest EPDS score")
	}

	form.Set("q3", "4")
	resp, _ = c.post("/epds", form)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("out of range answer: status %d, want 400", resp.StatusCode)
	}
}

func TestJournalFlow(t *testing.T) {
	c := newClient(t)
	c.signup("ana")

	resp, _ := c.post("/save_journal", url.Values{"filename": {""}, "content": {"x"}})
	if resp.Header.Get("Location") != "/journal" {
		t.Fatalf("empty filename: location %q", resp.Header.Get("Location"))
	}
	_, body := c.get("/journal")
	if !strings.Contains(body, "Filename cannot be empty!") {
		t.Error("journal page should flash the empty filename error")
	}

	resp, _ = c.post("/save_journal", url.Values{"filename": {"day one"}, "content": {"# Day one\n\nSlept **well**."}})
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/view_journals" {
		t.Fatalf("save: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	_, body = c.get("/view_journals")
	if !strings.Contains(body, "Journal saved successfully!") {
		t.Error("list should flash the saved message")
	}
	if !strings.Contains(body, "day_one.txt") {
		t.Errorf("list should contain the sanitized file name: %s", body)
	}

	_, body = c.get("/view_journals")
	if strings.Contains(body, "Journal saved successfully!") {
		t.Error("flash should only show once")
	}

	resp, body = c.get("/view_journal/day_one.txt")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("view: status %d", resp.StatusCode)
	}
	if !strings.Contains(body, "<strong>well</strong>") {
		t.Error("journal should render as markdown")
	}

	other := newClientFrom(t, c)
	other.signup("bo")
	resp, _ = other.get("/view_journal/day_one.txt")
	if resp.Header.Get("Location") != "/view_journals" {
		t.Error("another user must not read the journal")
	}

	resp, _ = c.get("/delete_journal/day_one.txt")
	if resp.Header.Get("Location") != "/view_journals" {
		t.Fatalf("delete: location %q", resp.Header.Get("Location"))
	}
	_, body = c.get("/view_journals")
	if !strings.Contains(body, "Journal deleted successfully!") {
		t.Error("list should flash the deleted message")
	}

	c.get("/delete_journal/day_one.txt")
	_, body = c.get("/view_journals")
	if !strings.Contains(body, "File not found!") {
		t.Error("deleting a missing journal should flash not found")
	}
}

func TestMemoryBoxUpload(t *testing.T) {
	c := newClient(t)
	c.signup("ana")

	pngBytes := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("csrf_token", c.cookie("csrf_token"))
	fw, err := mw.CreateFormFile("photo", "baby smile.png")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = fw.Write(pngBytes)
	_ = mw.Close()

	resp, err := c.http.Post(c.srv.URL+"/memory_box", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload: status %d body %s", resp.StatusCode, body)
	}
	if !strings.Contains(body, "/static/uploads/memory_box/") || !strings.Contains(body, "baby_smile.png") {
		t.Fatalf("memory box should list the photo: %s", body)
	}

	start := strings.Index(body, `src="/static/uploads/`)
	src := body[start+len(`src="`):]
	src = src[:strings.Index(src, `"`)]
	resp, got := c.get(src)
	if resp.StatusCode != http.StatusOK || got != string(pngBytes) {
		t.Errorf("photo %s: status %d", src, resp.StatusCode)
	}
}

// serve runs req in-process with the client's cookies, so oversized bodies
// can be refused without the server racing the upload
func (c *client) serve(req *http.Request) *httptest.ResponseRecorder {
	u, _ := url.Parse(c.srv.URL)
	for _, ck := range c.http.Jar.Cookies(u) {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.srv.Config.Handler.ServeHTTP(rec, req)
	return rec
}

func TestMemoryBoxUploadTooLarge(t *testing.T) {
	c := newClient(t)
	c.signup("ana")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("csrf_token", c.cookie("csrf_token"))
	fw, err := mw.CreateFormFile("photo", "huge.png")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = fw.Write([]byte("\x89PNG\r\n\x1a\n"))
	_, _ = fw.Write(bytes.Repeat([]byte{0}, 7<<20))
	_ = mw.Close()
	payload := buf.Bytes()

	tests := []struct {
		name string
		body func() io.Reader
	}{
		{"declared length", func() io.Reader { return bytes.NewReader(payload) }},
		{"chunked", func() io.Reader { return io.MultiReader(bytes.NewReader(payload)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/memory_box", tt.body())
			req.Header.Set("Content-Type", mw.FormDataContentType())

			rec := c.serve(req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status %d, want 400", rec.Code)
			}
		})
	}

	anon := newClientFrom(t, c)
	anon.get("/login")
	req := httptest.NewRequest(http.MethodPost, "/memory_box", io.MultiReader(bytes.NewReader(payload)))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if rec := anon.serve(req); rec.Code != http.StatusBadRequest {
		t.Errorf("anonymous: status %d, want 400", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/save_journal", strings.NewReader("content="+strings.Repeat("a", 2<<20)))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if rec := c.serve(req); rec.Code != http.StatusBadRequest {
		t.Errorf("large form: status %d, want 400", rec.Code)
	}

	_, body := c.get("/memory_box")
	if strings.Contains(body, "huge.png") {
		t.Error("an oversized upload must not be stored")
	}
}

type fakeStreamer struct {
	fragments []string
	err       error
}

func (f *fakeStreamer) Stream(ctx context.Context, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, frag := range f.fragments {
			if !yield(frag, nil) {
				return
			}
		}
		if f.err != nil {
			yield("", f.err)
		}
	}
}

func newChatServer(t *testing.T, streamer *fakeStreamer) *httptest.Server {
	t.Helper()

	a, err := app.NewChatWithStreamer(&config.ChatConfig{AppEnv: "test", ChatTimeout: time.Minute}, streamer)
	if err != nil {
		t.Fatalf("new chat app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	srv := httptest.NewServer(SetupChatRoutes(a))
	t.Cleanup(srv.Close)
	return srv
}

func postChat(t *testing.T, srv *httptest.Server, body string) (int, map[string]string) {
	t.Helper()

	resp, err := http.Post(srv.URL+"/chat", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var out map[string]string
	err = json.NewDecoder(resp.Body).Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, out
}

func TestChat(t *testing.T) {
	srv := newChatServer(t, &fakeStreamer{fragments: []string{"Rest ", "when ", "the baby sleeps."}})

	status, out := postChat(t, srv, `{"message":"any tips?"}`)
	if status != http.StatusOK {
		t.Fatalf("status %d", status)
	}
	if out["response"] != "Rest when the baby sleeps." {
		t.Errorf("response = %q", out["response"])
	}

	for _, body := range []string{`{}`, `{"message":""}`, `not json`} {
		status, out = postChat(t, srv, body)
		if status != http.StatusBadRequest || out["error"] == "" {
			t.Errorf("%s: status %d, want 400 with error", body, status)
		}
	}

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	page := readBody(t, resp)
	if resp.StatusCode != http.StatusOK || !strings.Contains(page, "/chat") {
		t.Errorf("chat page: status %d", resp.StatusCode)
	}
}

func TestChatUpstreamFailure(t *testing.T) {
	srv := newChatServer(t, &fakeStreamer{err: errors.New("quota exceeded")})

	status, out := postChat(t, srv, `{"message":"hello"}`)
	if status != http.StatusBadGateway {
		t.Errorf("status %d, want 502", status)
	}
	if strings.Contains(out["error"], "quota") {
		t.Error("upstream error details must not leak")
	}
}
