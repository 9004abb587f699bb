package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nzoschke/productivity/internal/app"
	"github.com/nzoschke/productivity/internal/config"
	"github.com/nzoschke/productivity/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, passwordHash string) *app.App {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{
		AppName:          "Productivity Hub",
		AppEnv:           "development",
		AppURL:           "http://localhost:8080",
		Timezone:         "UTC",
		Currency:         "USD",
		DBDriver:         "sqlite",
		DBConnection:     filepath.Join(dir, "test.db"),
		FallbackPath:     filepath.Join(dir, "fallback"),
		PasswordHash:     passwordHash,
		JWTSecret:        "test-secret",
		JWTExpiry:        time.Hour,
		ReminderSchedule: "@every 1m",
		MetricsEnabled:   true,
	}
	require.NoError(t, cfg.Validate())

	a, err := app.New(cfg)
	require.NoError(t, err)
	require.NoError(t, a.Load(context.Background()))
	t.Cleanup(func() { _ = a.Close() })
	return a
}

type client struct {
	handler http.Handler
	cookies map[string]*http.Cookie
}

func (c *client) do(t *testing.T, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	for _, cookie := range rec.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}
	return rec
}

func TestOpenAccess(t *testing.T) {
	a := newTestApp(t, "")
	c := &client{handler: SetupRoutes(a), cookies: map[string]*http.Cookie{}}

	rec := c.do(t, "POST", "/api/tasks", `{"text":"stretch"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	a.Wait()

	rec = c.do(t, "GET", "/api/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var list struct {
		Items []struct {
			Text string `json:"text"`
		} `json:"items"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "stretch", list.Items[0].Text)
	assert.Empty(t, list.Error)

	// A fresh load reads the row back from the database
	require.NoError(t, a.TaskService.Load(context.Background()))
	assert.Len(t, a.TaskService.Collection().Items(), 1)

	rec = c.do(t, "GET", "/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1 total")
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "nonce-")

	rec = c.do(t, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "productivity_backend_writes_total")

	assert.Equal(t, http.StatusOK, c.do(t, "GET", "/healthz", "").Code)
}

func TestPasswordProtected(t *testing.T) {
	hash, err := service.NewAuthService("", "", false, 0).HashPassword("correct horse")
	require.NoError(t, err)

	a := newTestApp(t, hash)
	c := &client{handler: SetupRoutes(a), cookies: map[string]*http.Cookie{}}

	assert.Equal(t, http.StatusUnauthorized, c.do(t, "GET", "/api/tasks", "").Code)
	assert.Equal(t, http.StatusUnauthorized, c.do(t, "POST", "/auth/login", `{"password":"nope"}`).Code)

	rec := c.do(t, "POST", "/auth/login", `{"password":"correct horse"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Contains(t, c.cookies, "auth_token")

	assert.Equal(t, http.StatusOK, c.do(t, "GET", "/api/tasks", "").Code)

	// Cookie sessions must echo the CSRF token
	assert.Equal(t, http.StatusForbidden, c.do(t, "POST", "/api/tasks", `{"text":"x"}`).Code)

	rec = c.do(t, "GET", "/auth/session", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var session struct {
		Authenticated bool   `json:"authenticated"`
		CSRFToken     string `json:"csrfToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.True(t, session.Authenticated)
	require.NotEmpty(t, session.CSRFToken)

	rec = c.do(t, "POST", "/api/tasks", `{"text":"x"}`, "X-CSRF-Token", session.CSRFToken)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = c.do(t, "POST", "/auth/logout", "", "X-CSRF-Token", session.CSRFToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, http.StatusUnauthorized, c.do(t, "GET", "/api/tasks", "").Code)
}
