// FILE: logviewer/src/internal/service/http.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"logviewer/src/internal/auth"
	"logviewer/src/internal/config"
	"logviewer/src/internal/core"
	"logviewer/src/internal/limit"
	"logviewer/src/internal/tls"
	"logviewer/src/internal/version"

	"github.com/lixenwraith/log"
	"github.com/lixenwraith/log/compat"
	"github.com/valyala/fasthttp"
)

// Upper bound for the page_length query parameter
const maxPageLength = 1000

// HTTPServer serves the viewer over JSON endpoints
type HTTPServer struct {
	// Configuration reference (NOT a copy)
	config  *config.ServerConfig
	service *Service
	server  *fasthttp.Server
	logger  *log.Logger

	basePath  string
	startTime time.Time

	// Security components
	authenticator *auth.Authenticator
	tlsManager    *tls.ServerManager
	ipChecker     *limit.IPChecker
	rateLimiter   *limit.RequestLimiter

	// Statistics
	totalRequests atomic.Uint64
	authFailures  atomic.Uint64
	authSuccesses atomic.Uint64
	ipDenied      atomic.Uint64
	rateLimited   atomic.Uint64
}

// NewHTTPServer wires the access control components around a service
func NewHTTPServer(cfg *config.ServerConfig, svc *Service, logger *log.Logger) (*HTTPServer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server config cannot be nil")
	}

	h := &HTTPServer{
		config:    cfg,
		service:   svc,
		logger:    logger,
		basePath:  strings.TrimSuffix(cfg.BasePath, "/"),
		startTime: time.Now(),
	}

	tlsManager, err := tls.NewServerManager(&cfg.TLS, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS manager: %w", err)
	}
	h.tlsManager = tlsManager

	authenticator, err := auth.New(&cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}
	h.authenticator = authenticator

	h.ipChecker = limit.NewIPChecker(&cfg.NetAccess, logger)
	h.rateLimiter = limit.NewRequestLimiter(&cfg.RateLimit, logger)

	return h, nil
}

// Start listens in the background and returns once the listener is up
func (h *HTTPServer) Start() error {
	h.server = &fasthttp.Server{
		Name:             fmt.Sprintf("LogViewer/%s", version.Short()),
		Handler:          h.requestHandler,
		DisableKeepalive: false,
		Logger:           compat.NewFastHTTPAdapter(h.logger),
		ReadTimeout:      time.Duration(h.config.ReadTimeoutMS) * time.Millisecond,
		WriteTimeout:     time.Duration(h.config.WriteTimeoutMS) * time.Millisecond,
		CloseOnShutdown:  true,
	}

	if h.tlsManager != nil {
		h.server.TLSConfig = h.tlsManager.GetHTTPConfig()
	}

	addr := fmt.Sprintf("%s:%d", h.config.Host, h.config.Port)

	errChan := make(chan error, 1)
	go func() {
		h.logger.Info("msg", "HTTP server started",
			"component", "http_server",
			"host", h.config.Host,
			"port", h.config.Port,
			"base_path", h.config.BasePath,
			"status_path", h.config.StatusPath,
			"tls_enabled", h.tlsManager != nil,
			"auth_type", h.config.Auth.Type)

		var err error
		if h.tlsManager != nil {
			err = h.server.ListenAndServeTLS(addr, h.config.TLS.CertFile, h.config.TLS.KeyFile)
		} else {
			err = h.server.ListenAndServe(addr)
		}

		if err != nil {
			errChan <- err
		}
	}()

	// Check if server started successfully
	select {
	case err := <-errChan:
		return err
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// Stop shuts the server down and releases background workers
func (h *HTTPServer) Stop() {
	h.logger.Info("msg", "Stopping HTTP server", "component", "http_server")

	if h.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := h.server.ShutdownWithContext(ctx); err != nil {
			h.logger.Warn("msg", "HTTP server shutdown incomplete",
				"component", "http_server",
				"error", err)
		}
	}

	h.rateLimiter.Stop()
	h.authenticator.Close()

	h.logger.Info("msg", "HTTP server stopped", "component", "http_server")
}

func (h *HTTPServer) requestHandler(ctx *fasthttp.RequestCtx) {
	h.totalRequests.Add(1)
	start := time.Now()
	path := string(ctx.Path())
	remoteAddr := ctx.RemoteAddr().String()

	defer func() {
		if h.skipAccessLog(path) {
			return
		}
		h.logger.Info("msg", "HTTP request",
			"component", "http_server",
			"method", string(ctx.Method()),
			"path", path,
			"status", ctx.Response.StatusCode(),
			"remote_addr", remoteAddr,
			"duration", time.Since(start))
	}()

	if !ctx.IsGet() && !ctx.IsHead() {
		ctx.Response.Header.Set("Allow", "GET, HEAD")
		h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	if !h.ipChecker.IsAllowed(ctx.RemoteAddr()) {
		h.ipDenied.Add(1)
		h.writeError(ctx, fasthttp.StatusForbidden, "Forbidden")
		return
	}

	if !h.rateLimiter.Allow(hostOf(remoteAddr)) {
		h.rateLimited.Add(1)
		ctx.Response.Header.Set("Retry-After", "1")
		h.writeError(ctx, fasthttp.StatusTooManyRequests, "Too many requests")
		return
	}

	// Status endpoint doesn't require auth
	if path == h.config.StatusPath {
		h.handleStatus(ctx)
		return
	}

	if h.authenticator != nil {
		authHeader := string(ctx.Request.Header.Peek("Authorization"))
		if _, err := h.authenticator.AuthenticateHTTP(authHeader, remoteAddr); err != nil {
			h.authFailures.Add(1)
			h.logger.Warn("msg", "Authentication failed",
				"component", "http_server",
				"remote_addr", remoteAddr,
				"error", err)

			if h.authenticator.Scheme() == "Basic" {
				ctx.Response.Header.Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", h.authenticator.Realm()))
			} else {
				ctx.Response.Header.Set("WWW-Authenticate", "Bearer")
			}
			h.writeError(ctx, fasthttp.StatusUnauthorized, "Unauthorized")
			return
		}
		h.authSuccesses.Add(1)
	}

	name, ajax, ok := h.route(path)
	switch {
	case !ok:
		h.writeError(ctx, fasthttp.StatusNotFound, "Not Found")
	case name == "":
		h.writeJSON(ctx, fasthttp.StatusOK, h.service.ListFiles())
	default:
		h.handlePage(ctx, name, ajax)
	}
}

// route splits a request path into a file name and the ajax flag.
// An empty name with ok set addresses the file list.
func (h *HTTPServer) route(path string) (name string, ajax bool, ok bool) {
	if path == h.basePath || path == h.basePath+"/" {
		return "", false, true
	}

	rest, found := strings.CutPrefix(path, h.basePath+"/")
	if !found {
		return "", false, false
	}
	rest = strings.TrimSuffix(rest, "/")

	if before, isAjax := strings.CutSuffix(rest, "/ajax"); isAjax {
		rest, ajax = before, true
	}

	if rest == "" || strings.Contains(rest, "/") {
		return "", false, false
	}
	return rest, ajax, true
}

func (h *HTTPServer) handlePage(ctx *fasthttp.RequestCtx, name string, ajax bool) {
	args := ctx.QueryArgs()
	page := queryInt(args.Peek("page"), 1)
	pageLength := min(queryInt(args.Peek("page_length"), 0), maxPageLength)

	view, err := h.service.Page(ctx, name, page, pageLength)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			h.writeError(ctx, fasthttp.StatusNotFound, "Log file not found")
			return
		}
		h.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	status := fasthttp.StatusOK
	if view.Err != nil {
		status = fasthttp.StatusInternalServerError
	}

	if ajax {
		h.writeJSON(ctx, status, view.Ajax())
		return
	}
	h.writeJSON(ctx, status, view)
}

// skipAccessLog suppresses access lines for refresh polling
func (h *HTTPServer) skipAccessLog(path string) bool {
	return h.config.DisableAccessLogs &&
		strings.HasPrefix(path, h.basePath+"/") &&
		strings.HasSuffix(path, "/ajax/")
}

func (h *HTTPServer) handleStatus(ctx *fasthttp.RequestCtx) {
	status := map[string]any{
		"service": "LogViewer",
		"version": version.Short(),
		"server": map[string]any{
			"host":           h.config.Host,
			"port":           h.config.Port,
			"uptime_seconds": int(time.Since(h.startTime).Seconds()),
		},
		"endpoints": map[string]string{
			"files":  h.basePath + "/",
			"page":   h.basePath + "/{name}/",
			"ajax":   h.basePath + "/{name}/ajax/",
			"status": h.config.StatusPath,
		},
		"features": map[string]any{
			"tls":        h.tlsManager.GetStats(),
			"auth":       h.authenticator.GetStats(),
			"rate_limit": h.rateLimiter.GetStats(),
			"net_access": h.ipChecker.GetStats(),
		},
		"statistics": map[string]any{
			"total_requests": h.totalRequests.Load(),
			"auth_failures":  h.authFailures.Load(),
			"auth_successes": h.authSuccesses.Load(),
			"ip_denied":      h.ipDenied.Load(),
			"rate_limited":   h.rateLimited.Load(),
		},
		"viewer": h.service.GetStats(),
	}

	h.writeJSON(ctx, fasthttp.StatusOK, status)
}

func (h *HTTPServer) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		h.logger.Error("msg", "Failed to encode response",
			"component", "http_server",
			"error", err)
	}
}

func (h *HTTPServer) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	h.writeJSON(ctx, status, map[string]string{"error": message})
}

// GetStats returns server statistics
func (h *HTTPServer) GetStats() map[string]any {
	return map[string]any{
		"total_requests": h.totalRequests.Load(),
		"auth_failures":  h.authFailures.Load(),
		"ip_denied":      h.ipDenied.Load(),
		"rate_limited":   h.rateLimited.Load(),
	}
}

func queryInt(raw []byte, fallback int) int {
	if len(raw) == 0 {
		return fallback
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return fallback
	}
	return n
}

func hostOf(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
