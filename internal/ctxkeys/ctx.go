package ctxkeys

import (
	"context"

	"github.com/nzoschke/productivity/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	AuthenticatedKey contextKey = "authenticated"
	RequestIDKey     contextKey = "request_id"
	URLPathKey       contextKey = "url_path"
	ConfigKey        contextKey = "config"
	CSRFTokenKey     contextKey = "csrf_token"
)

// Authenticated reports whether the request carried a valid session token.
func Authenticated(ctx context.Context) bool {
	ok, _ := ctx.Value(AuthenticatedKey).(bool)
	return ok
}

func WithAuthenticated(ctx context.Context, ok bool) context.Context {
	return context.WithValue(ctx, AuthenticatedKey, ok)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
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
