package routes

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/momhive/momhive/assets"
	"github.com/momhive/momhive/internal/app"
	"github.com/momhive/momhive/internal/handler"
	"github.com/momhive/momhive/internal/middleware"
	"github.com/momhive/momhive/internal/validation"
)

// maxFormBody caps every POST body except photo uploads
const maxFormBody = 1 << 20

// SetupRoutes builds the wellness tracker handler
func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(app.MoodService, app.ScreeningService)
	auth := handler.NewAuthHandler(app.AuthService)
	epds := handler.NewEPDSHandler(app.ScreeningService)
	mood := handler.NewMoodHandler(app.MoodService)
	memoryBox := handler.NewMemoryBoxHandler(app.MemoryBoxService)
	journal := handler.NewJournalHandler(app.JournalService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Static files: embedded assets, runtime charts and uploads
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))
	mux.Handle("GET /static/", http.StripPrefix("/static/", noDirListing(http.FileServer(http.Dir(app.Cfg.StaticDir)))))

	mux.HandleFunc("GET /{$}", home.IndexPage)
	mux.HandleFunc("GET /music", home.MusicPage)

	// Auth (rate limited per IP)
	rateLimiter := middleware.RateLimit(middleware.NewLimiter(app.Redis, "momhive:auth", 10, 15*time.Minute))

	mux.HandleFunc("GET /signup", auth.SignupPage)
	mux.HandleFunc("POST /signup", rateLimiter(auth.Signup))
	mux.HandleFunc("GET /login", auth.LoginPage)
	mux.HandleFunc("POST /login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /logout", auth.Logout)

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	mux.HandleFunc("GET /home", middleware.RequireLogin(home.HomePage))

	// Screening
	mux.HandleFunc("GET /epds", middleware.RequireLogin(epds.EPDSPage))
	mux.HandleFunc("POST /epds", middleware.RequireLogin(epds.Submit))

	// Mood
	mux.HandleFunc("GET /mood_tracker", middleware.RequireLogin(mood.TrackerPage))
	mux.HandleFunc("POST /mood_tracker", middleware.RequireLogin(mood.Record))
	mux.HandleFunc("GET /mood_graph", middleware.RequireLogin(mood.GraphPage))

	// Memory box
	mux.HandleFunc("GET /memory_box", middleware.RequireLogin(memoryBox.MemoryBoxPage))
	mux.HandleFunc("POST /memory_box", middleware.RequireLogin(memoryBox.Upload))

	// Journal
	mux.HandleFunc("GET /journal", middleware.RequireLogin(journal.JournalPage))
	mux.HandleFunc("POST /journal", middleware.RequireLogin(journal.JournalPage))
	mux.HandleFunc("POST /save_journal", middleware.RequireLogin(journal.Save))
	mux.HandleFunc("GET /view_journals", middleware.RequireLogin(journal.ListPage))
	mux.HandleFunc("GET /view_journal/{filename}", middleware.RequireLogin(journal.ViewPage))
	mux.HandleFunc("GET /delete_journal/{filename}", middleware.RequireLogin(journal.Delete))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // SecurityHeaders reads the S3 endpoint from it
		middleware.NonceMiddleware, // must run before SecurityHeaders
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.BodyLimit(maxFormBody, map[string]int64{
			"POST /memory_box": validation.PhotoConstraints.MaxSize + maxFormBody,
		}),
		middleware.CSRFProtection, // parses form bodies, so after BodyLimit
		middleware.Session(app.AuthService),
		middleware.Flash,
		middleware.WithURLPath,
	)

	return handler
}

// SetupChatRoutes builds the chat proxy handler
func SetupChatRoutes(app *app.ChatApp) http.Handler {
	chat := handler.NewChatHandler(app.ChatService)

	mux := http.NewServeMux()

	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	rateLimiter := middleware.RateLimit(middleware.NewLimiter(app.Redis, "momhive:chat", 20, time.Minute))

	mux.HandleFunc("GET /{$}", chat.IndexPage)
	mux.HandleFunc("POST /chat", rateLimiter(chat.Chat))

	return middleware.Chain(
		mux,
		middleware.NonceMiddleware,
		middleware.SecurityHeaders,
		middleware.RequestLogging,
	)
}

// noDirListing hides directory indexes of charts and uploads
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
