// FILE: logviewer/src/internal/auth/authenticator.go
package auth

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	"logviewer/src/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lixenwraith/log"
	"golang.org/x/time/rate"
)

// Prevent unbounded map growth
const maxAuthTrackedIPs = 10000

// Authenticator checks the credentials of viewer requests
type Authenticator struct {
	config       *config.AuthConfig
	logger       *log.Logger
	basicUsers   map[string]string // username -> password hash
	bearerTokens map[string]bool   // token -> valid
	jwtParser    *jwt.Parser
	jwtKeyFunc   jwt.Keyfunc
	mu           sync.RWMutex

	// Brute-force protection
	ipAuthAttempts map[string]*ipAuthState
	authMu         sync.RWMutex
	failureDelay   time.Duration
	blockedDelay   time.Duration

	done chan struct{}
	once sync.Once
}

// Per-IP auth attempt tracking
type ipAuthState struct {
	limiter      *rate.Limiter
	failCount    int
	lastAttempt  time.Time
	blockedUntil time.Time
}

// Identity is the authenticated caller of a request
type Identity struct {
	Username string
	Method   string // none, basic, bearer, jwt
}

// New creates an authenticator from config. Returns nil when auth is disabled.
func New(cfg *config.AuthConfig, logger *log.Logger) (*Authenticator, error) {
	if cfg == nil || cfg.Type == "" || cfg.Type == "none" {
		return nil, nil
	}

	a := &Authenticator{
		config:         cfg,
		logger:         logger,
		basicUsers:     make(map[string]string),
		bearerTokens:   make(map[string]bool),
		ipAuthAttempts: make(map[string]*ipAuthState),
		failureDelay:   500 * time.Millisecond,
		blockedDelay:   2 * time.Second,
		done:           make(chan struct{}),
	}

	switch cfg.Type {
	case "basic":
		for _, user := range cfg.Basic.Users {
			a.basicUsers[user.Username] = user.PasswordHash
		}

		if cfg.Basic.UsersFile != "" {
			if err := a.loadUsersFile(cfg.Basic.UsersFile); err != nil {
				return nil, fmt.Errorf("failed to load users file: %w", err)
			}
		}

	case "bearer":
		for _, token := range cfg.Bearer.Tokens {
			a.bearerTokens[token] = true
		}

		if cfg.Bearer.JWT.SigningKey != "" {
			a.jwtParser = jwt.NewParser(
				jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
				jwt.WithLeeway(5*time.Second),
				jwt.WithExpirationRequired(),
			)
			key := []byte(cfg.Bearer.JWT.SigningKey)
			a.jwtKeyFunc = func(token *jwt.Token) (any, error) {
				return key, nil
			}
		}

	default:
		return nil, fmt.Errorf("unsupported auth type: %s", cfg.Type)
	}

	go a.authAttemptCleanup()

	logger.Info("msg", "Authenticator initialized",
		"component", "auth",
		"type", cfg.Type)

	return a, nil
}

// Realm returns the realm advertised in WWW-Authenticate challenges
func (a *Authenticator) Realm() string {
	if a == nil || a.config.Basic.Realm == "" {
		return "Restricted"
	}
	return a.config.Basic.Realm
}

// Scheme returns the HTTP auth scheme expected from clients
func (a *Authenticator) Scheme() string {
	if a != nil && a.config.Type == "bearer" {
		return "Bearer"
	}
	return "Basic"
}

// Close stops background cleanup
func (a *Authenticator) Close() {
	if a == nil {
		return
	}
	a.once.Do(func() { close(a.done) })
}

// Check and enforce rate limits
func (a *Authenticator) checkRateLimit(remoteAddr string) error {
	ip := hostOf(remoteAddr)

	a.authMu.Lock()
	defer a.authMu.Unlock()

	state, exists := a.ipAuthAttempts[ip]
	now := time.Now()

	if !exists {
		if len(a.ipAuthAttempts) >= maxAuthTrackedIPs {
			a.evictOldest(now)
		}

		// 5 attempts per minute, burst of 3
		state = &ipAuthState{
			limiter:     rate.NewLimiter(rate.Every(12*time.Second), 3),
			lastAttempt: now,
		}
		a.ipAuthAttempts[ip] = state
	}

	if now.Before(state.blockedUntil) {
		remaining := state.blockedUntil.Sub(now)
		a.logger.Warn("msg", "IP temporarily blocked",
			"component", "auth",
			"ip", ip,
			"remaining", remaining)
		time.Sleep(a.blockedDelay)
		return fmt.Errorf("temporarily blocked, try again in %v", remaining.Round(time.Second))
	}

	if !state.limiter.Allow() {
		state.failCount++

		// Only set a new block once the previous one expired
		if state.blockedUntil.IsZero() || now.After(state.blockedUntil) {
			// Progressive blocking: 2^failCount minutes, capped at 64
			blockMinutes := 1 << min(state.failCount, 6)
			state.blockedUntil = now.Add(time.Duration(blockMinutes) * time.Minute)

			a.logger.Warn("msg", "Rate limit exceeded, blocking IP",
				"component", "auth",
				"ip", ip,
				"fail_count", state.failCount,
				"block_duration", time.Duration(blockMinutes)*time.Minute)
		}

		return fmt.Errorf("rate limit exceeded")
	}

	state.lastAttempt = now
	return nil
}

// evictOldest drops the least recently seen IP from a sample of 20
func (a *Authenticator) evictOldest(now time.Time) {
	const sampleSize = 20
	var oldestIP string
	oldestTime := now

	sampled := 0
	for ip, state := range a.ipAuthAttempts {
		if state.lastAttempt.Before(oldestTime) {
			oldestIP = ip
			oldestTime = state.lastAttempt
		}
		sampled++
		if sampled >= sampleSize {
			break
		}
	}

	if oldestIP != "" {
		delete(a.ipAuthAttempts, oldestIP)
		a.logger.Debug("msg", "Evicted old auth attempt state",
			"component", "auth",
			"evicted_ip", oldestIP,
			"last_seen", oldestTime)
	}
}

func (a *Authenticator) recordFailure(remoteAddr string) {
	ip := hostOf(remoteAddr)

	a.authMu.Lock()
	defer a.authMu.Unlock()

	if state, exists := a.ipAuthAttempts[ip]; exists {
		state.failCount++
		state.lastAttempt = time.Now()
	}
}

func (a *Authenticator) recordSuccess(remoteAddr string) {
	ip := hostOf(remoteAddr)

	a.authMu.Lock()
	defer a.authMu.Unlock()

	if state, exists := a.ipAuthAttempts[ip]; exists {
		state.failCount = 0
		state.blockedUntil = time.Time{}
	}
}

// AuthenticateHTTP validates an Authorization header value
func (a *Authenticator) AuthenticateHTTP(authHeader, remoteAddr string) (*Identity, error) {
	if a == nil {
		return &Identity{Method: "none"}, nil
	}

	if err := a.checkRateLimit(remoteAddr); err != nil {
		return nil, err
	}

	var id *Identity
	var err error

	switch a.config.Type {
	case "basic":
		id, err = a.authenticateBasic(authHeader)
	case "bearer":
		id, err = a.authenticateBearer(authHeader)
	default:
		err = fmt.Errorf("unsupported auth type: %s", a.config.Type)
	}

	if err != nil {
		a.recordFailure(remoteAddr)
		time.Sleep(a.failureDelay)
		return nil, err
	}

	a.recordSuccess(remoteAddr)
	a.logger.Debug("msg", "Request authenticated",
		"component", "auth",
		"username", id.Username,
		"method", id.Method,
		"remote_addr", remoteAddr)
	return id, nil
}

func (a *Authenticator) authenticateBasic(authHeader string) (*Identity, error) {
	if !strings.HasPrefix(authHeader, "Basic ") {
		return nil, fmt.Errorf("invalid basic auth header")
	}

	payload, err := base64.StdEncoding.DecodeString(authHeader[6:])
	if err != nil {
		return nil, fmt.Errorf("invalid base64 encoding")
	}

	username, password, ok := strings.Cut(string(payload), ":")
	if !ok {
		return nil, fmt.Errorf("invalid credentials format")
	}

	a.mu.RLock()
	expectedHash, exists := a.basicUsers[username]
	a.mu.RUnlock()

	if !exists {
		// Burn comparable time for unknown users
		VerifyPassword(password, dummyHash)
		return nil, fmt.Errorf("invalid credentials")
	}

	if !VerifyPassword(password, expectedHash) {
		return nil, fmt.Errorf("invalid credentials")
	}

	return &Identity{Username: username, Method: "basic"}, nil
}

func (a *Authenticator) authenticateBearer(authHeader string) (*Identity, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("invalid bearer auth header")
	}

	return a.validateToken(authHeader[7:])
}

func (a *Authenticator) validateToken(token string) (*Identity, error) {
	a.mu.RLock()
	isStatic := a.bearerTokens[token]
	a.mu.RUnlock()

	if isStatic {
		return &Identity{Method: "bearer"}, nil
	}

	if a.jwtParser == nil {
		return nil, fmt.Errorf("invalid token")
	}

	claims := jwt.MapClaims{}
	parsedToken, err := a.jwtParser.ParseWithClaims(token, claims, a.jwtKeyFunc)
	if err != nil {
		return nil, fmt.Errorf("JWT validation failed: %w", err)
	}
	if !parsedToken.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}

	jwtCfg := a.config.Bearer.JWT
	if jwtCfg.Issuer != "" {
		if iss, ok := claims["iss"].(string); !ok || iss != jwtCfg.Issuer {
			return nil, fmt.Errorf("invalid token issuer")
		}
	}

	if jwtCfg.Audience != "" {
		// Audience may be a string or a list
		audValid := false
		switch aud := claims["aud"].(type) {
		case string:
			audValid = aud == jwtCfg.Audience
		case []any:
			for _, aa := range aud {
				if audStr, ok := aa.(string); ok && audStr == jwtCfg.Audience {
					audValid = true
					break
				}
			}
		}
		if !audValid {
			return nil, fmt.Errorf("invalid token audience")
		}
	}

	username, _ := claims["sub"].(string)
	return &Identity{Username: username, Method: "jwt"}, nil
}

// Cleanup old auth attempts
func (a *Authenticator) authAttemptCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-a.done:
			return
		case <-ticker.C:
			a.authMu.Lock()
			now := time.Now()
			for ip, state := range a.ipAuthAttempts {
				if now.Sub(state.lastAttempt) > time.Hour {
					delete(a.ipAuthAttempts, ip)
					a.logger.Debug("msg", "Cleaned up auth attempt state",
						"component", "auth",
						"ip", ip)
				}
			}
			a.authMu.Unlock()
		}
	}
}

func (a *Authenticator) loadUsersFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open users file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		username, hash, ok := strings.Cut(line, ":")
		if !ok {
			a.logger.Warn("msg", "Skipping malformed line in users file",
				"component", "auth",
				"path", path,
				"line_number", lineNumber)
			continue
		}
		username, hash = strings.TrimSpace(username), strings.TrimSpace(hash)
		if username != "" && hash != "" {
			// File entries override inline users
			a.basicUsers[username] = hash
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading users file: %w", err)
	}

	a.logger.Info("msg", "Loaded users from file",
		"component", "auth",
		"path", path,
		"user_count", len(a.basicUsers))

	return nil
}

// GetStats returns authentication statistics
func (a *Authenticator) GetStats() map[string]any {
	if a == nil {
		return map[string]any{"enabled": false}
	}

	a.authMu.RLock()
	tracked := len(a.ipAuthAttempts)
	a.authMu.RUnlock()

	return map[string]any{
		"enabled":       true,
		"type":          a.config.Type,
		"basic_users":   len(a.basicUsers),
		"static_tokens": len(a.bearerTokens),
		"jwt_enabled":   a.jwtParser != nil,
		"tracked_ips":   tracked,
	}
}

func hostOf(remoteAddr string) string {
	ip, _, err := net.SplitHostPort(remoteAddr)
	if err != nil || ip == "" {
		return remoteAddr
	}
	return ip
}
