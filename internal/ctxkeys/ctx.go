package ctxkeys

import (
	"context"

	"github.com/momhive/momhive/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	UsernameKey  contextKey = "username"
	URLPathKey   contextKey = "url_path"
	ConfigKey    contextKey = "config"
	CSRFTokenKey contextKey = "csrf_token"
	FlashKey     contextKey = "flash"
	RequestIDKey contextKey = "request_id"
)

// Username returns the signed-in username, or "" for anonymous requests
func Username(ctx context.Context) string {
	username, _ := ctx.Value(UsernameKey).(string)
	return username
}

func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameKey, username)
}

func URLPath(ctx context.Context) string {
	path, _ := ctx.Value(URLPathKey).(string)
	return path
}

func WithURLPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, URLPathKey, path)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(CSRFTokenKey).(string)
	return token
}

func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CSRFTokenKey, token)
}

// Flash returns the one-shot message carried over from the previous redirect
func Flash(ctx context.Context) string {
	msg, _ := ctx.Value(FlashKey).(string)
	return msg
}

func WithFlash(ctx context.Context, msg string) context.Context {
	return context.WithValue(ctx, FlashKey, msg)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
