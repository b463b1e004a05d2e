package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Log is the global logger instance
var Log *slog.Logger

// Options selects the output format and the optional Sentry sink
type Options struct {
	Service   string // tags every record, e.g. "web" or "chatbot"
	Dev       bool   // text at debug level, otherwise JSON at info
	SentryDSN string
	Env       string
}

// Init builds the process logger and sets it as the slog default.
// Errors are also sent to Sentry when a DSN is configured.
func Init(opts Options) {
	var handlers []slog.Handler

	if opts.Dev {
		handlers = append(handlers, slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              opts.SentryDSN,
			Environment:      opts.Env,
			ServerName:       opts.Service,
			TracesSampleRate: 1.0,
		})
		if err != nil {
			slog.Warn("sentry init failed, continuing without it", "error", err)
		} else {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		}
	}

	handler := handlers[0]
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	}

	Log = slog.New(handler)
	if opts.Service != "" {
		Log = Log.With("service", opts.Service)
	}
	slog.SetDefault(Log)
}

// Flush waits for buffered Sentry events before the process exits
func Flush() {
	sentry.Flush(2 * time.Second)
}
