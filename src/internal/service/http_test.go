// FILE: logviewer/src/internal/service/http_test.go
package service

import (
	"encoding/base64"
	"encoding/json"
	"net"
	"testing"

	"logviewer/src/internal/auth"
	"logviewer/src/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newTestServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:              "127.0.0.1",
		Port:              0,
		BasePath:          "/logs",
		StatusPath:        "/status",
		DisableAccessLogs: true,
		Auth:              config.AuthConfig{Type: "none"},
	}
}

func newTestHTTPServer(t *testing.T, cfg *config.ServerConfig) *HTTPServer {
	t.Helper()
	dir := t.TempDir()
	writeDemoLog(t, dir)

	h, err := NewHTTPServer(cfg, newTestService(t, newTestViewerConfig(dir)), newTestLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		h.rateLimiter.Stop()
		h.authenticator.Close()
	})
	return h
}

type request struct {
	method string
	uri    string
	header map[string]string
	ip     string
}

func serve(h *HTTPServer, r request) *fasthttp.RequestCtx {
	var req fasthttp.Request
	if r.method == "" {
		r.method = fasthttp.MethodGet
	}
	if r.ip == "" {
		r.ip = "127.0.0.1"
	}
	req.Header.SetMethod(r.method)
	req.SetRequestURI(r.uri)
	for k, v := range r.header {
		req.Header.Set(k, v)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, &net.TCPAddr{IP: net.ParseIP(r.ip), Port: 50000}, nil)
	h.requestHandler(ctx)
	return ctx
}

func decode(t *testing.T, ctx *fasthttp.RequestCtx) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	return body
}

func TestHTTPRoutes(t *testing.T) {
	h := newTestHTTPServer(t, newTestServerConfig())

	t.Run("List", func(t *testing.T) {
		for _, uri := range []string{"/logs", "/logs/"} {
			ctx := serve(h, request{uri: uri})
			require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
			assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

			body := decode(t, ctx)
			assert.Equal(t, "Log Files", body["title"])
			files := body["log_files"].([]any)
			require.Len(t, files, 1)
			assert.Equal(t, "demo.log", files[0].(map[string]any)["name"])
			assert.NotContains(t, files[0].(map[string]any), "Path")
		}
	})

	t.Run("Detail", func(t *testing.T) {
		ctx := serve(h, request{uri: "/logs/demo.log/?page=2"})
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		body := decode(t, ctx)
		assert.Equal(t, "demo.log", body["filename"])
		assert.Equal(t, float64(2), body["current_page"])
		assert.Equal(t, float64(3), body["total_pages"])
		assert.Equal(t, float64(5), body["start_line"])
		assert.Equal(t, float64(8), body["end_line"])
		assert.Equal(t, float64(1000), body["refresh_interval"])
		assert.Len(t, body["log_lines"], 4)
	})

	t.Run("DetailPageLength", func(t *testing.T) {
		ctx := serve(h, request{uri: "/logs/demo.log?page_length=25"})
		body := decode(t, ctx)
		assert.Len(t, body["log_lines"], 10)
		first := body["log_lines"].([]any)[0].(map[string]any)
		assert.Equal(t, "INFO", first["level"])
		assert.Equal(t, "1", first["line_range"])
	})

	t.Run("Ajax", func(t *testing.T) {
		ctx := serve(h, request{uri: "/logs/demo.log/ajax/?page=3"})
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		body := decode(t, ctx)
		assert.Len(t, body["log_lines"], 2)
		assert.Equal(t, float64(10), body["total_entries"])
		assert.Equal(t, float64(10), body["total_lines"])
		assert.Equal(t, float64(9), body["start_line"])
		assert.Equal(t, float64(10), body["end_line"])
		assert.NotContains(t, body, "refresh_interval")
	})

	t.Run("InvalidPageDefaultsToFirst", func(t *testing.T) {
		body := decode(t, serve(h, request{uri: "/logs/demo.log/?page=abc"}))
		assert.Equal(t, float64(1), body["current_page"])
	})

	t.Run("NotFound", func(t *testing.T) {
		for _, uri := range []string{"/logs/missing.log/", "/logs/nope.log/ajax/"} {
			ctx := serve(h, request{uri: uri})
			assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
			assert.Equal(t, "Log file not found", decode(t, ctx)["error"])
		}

		for _, uri := range []string{"/other", "/logs/a/b/", "/logsx"} {
			ctx := serve(h, request{uri: uri})
			assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode(), uri)
		}
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		ctx := serve(h, request{method: fasthttp.MethodPost, uri: "/logs/"})
		assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
		assert.Equal(t, "GET, HEAD", string(ctx.Response.Header.Peek("Allow")))
	})

	t.Run("Status", func(t *testing.T) {
		ctx := serve(h, request{uri: "/status"})
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		body := decode(t, ctx)
		assert.Equal(t, "LogViewer", body["service"])
		assert.Contains(t, body, "viewer")
		assert.Contains(t, body["features"], "auth")
	})
}

func TestHTTPRoute(t *testing.T) {
	h := &HTTPServer{basePath: "/logs"}

	tests := []struct {
		path string
		name string
		ajax bool
		ok   bool
	}{
		{"/logs", "", false, true},
		{"/logs/", "", false, true},
		{"/logs/app.log", "app.log", false, true},
		{"/logs/app.log/", "app.log", false, true},
		{"/logs/app.log/ajax/", "app.log", true, true},
		{"/logs/app.log/ajax", "app.log", true, true},
		{"/logs/ajax/", "ajax", false, true},
		{"/logs/a/b/", "", false, false},
		{"/status", "", false, false},
	}

	for _, tt := range tests {
		name, ajax, ok := h.route(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.name, name, tt.path)
		assert.Equal(t, tt.ajax, ajax, tt.path)
	}
}

func TestHTTPAccessLogPredicate(t *testing.T) {
	h := &HTTPServer{basePath: "/logs", config: &config.ServerConfig{DisableAccessLogs: true}}
	assert.True(t, h.skipAccessLog("/logs/app.log/ajax/"))
	assert.False(t, h.skipAccessLog("/logs/app.log/"))
	assert.False(t, h.skipAccessLog("/other/ajax/"))

	h.config.DisableAccessLogs = false
	assert.False(t, h.skipAccessLog("/logs/app.log/ajax/"))
}

func TestHTTPAccessControl(t *testing.T) {
	t.Run("IPDenied", func(t *testing.T) {
		cfg := newTestServerConfig()
		cfg.NetAccess.IPBlacklist = []string{"10.9.9.9"}
		h := newTestHTTPServer(t, cfg)

		ctx := serve(h, request{uri: "/logs/", ip: "10.9.9.9"})
		assert.Equal(t, fasthttp.StatusForbidden, ctx.Response.StatusCode())

		ctx = serve(h, request{uri: "/logs/", ip: "10.9.9.8"})
		assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	})

	t.Run("RateLimited", func(t *testing.T) {
		cfg := newTestServerConfig()
		cfg.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, BurstSize: 2}
		h := newTestHTTPServer(t, cfg)

		for range 2 {
			assert.Equal(t, fasthttp.StatusOK, serve(h, request{uri: "/logs/"}).Response.StatusCode())
		}
		ctx := serve(h, request{uri: "/logs/"})
		assert.Equal(t, fasthttp.StatusTooManyRequests, ctx.Response.StatusCode())
		assert.Equal(t, "1", string(ctx.Response.Header.Peek("Retry-After")))

		ctx = serve(h, request{uri: "/logs/", ip: "127.0.0.2"})
		assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	})

	t.Run("BasicAuth", func(t *testing.T) {
		hash, err := auth.HashPassword("pw")
		require.NoError(t, err)

		cfg := newTestServerConfig()
		cfg.Auth = config.AuthConfig{
			Type: "basic",
			Basic: config.BasicAuthConfig{
				Users: []config.BasicAuthUser{{Username: "admin", PasswordHash: hash}},
				Realm: "Logs",
			},
		}
		h := newTestHTTPServer(t, cfg)

		ctx := serve(h, request{uri: "/logs/", ip: "10.0.0.1"})
		assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
		assert.Equal(t, `Basic realm="Logs"`, string(ctx.Response.Header.Peek("WWW-Authenticate")))

		creds := base64.StdEncoding.EncodeToString([]byte("admin:pw"))
		ctx = serve(h, request{uri: "/logs/", ip: "10.0.0.2", header: map[string]string{"Authorization": "Basic " + creds}})
		assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		// Status stays open
		ctx = serve(h, request{uri: "/status", ip: "10.0.0.3"})
		assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	})

	t.Run("BearerAuth", func(t *testing.T) {
		cfg := newTestServerConfig()
		cfg.Auth = config.AuthConfig{
			Type:   "bearer",
			Bearer: config.BearerAuthConfig{Tokens: []string{"secret-token"}},
		}
		h := newTestHTTPServer(t, cfg)

		ctx := serve(h, request{uri: "/logs/demo.log/ajax/", ip: "10.0.1.1", header: map[string]string{"Authorization": "Bearer secret-token"}})
		assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		ctx = serve(h, request{uri: "/logs/demo.log/ajax/", ip: "10.0.1.2", header: map[string]string{"Authorization": "Bearer wrong"}})
		assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
		assert.Equal(t, "Bearer", string(ctx.Response.Header.Peek("WWW-Authenticate")))

		stats := decode(t, serve(h, request{uri: "/status", ip: "10.0.1.3"}))["statistics"].(map[string]any)
		assert.Equal(t, float64(1), stats["auth_failures"])
		assert.Equal(t, float64(1), stats["auth_successes"])
	})
}

func TestHTTPStartStop(t *testing.T) {
	h := newTestHTTPServer(t, newTestServerConfig())
	require.NoError(t, h.Start())
	h.Stop()
}
