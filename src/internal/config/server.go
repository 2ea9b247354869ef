// FILE: logviewer/src/internal/config/server.go
package config

type ServerConfig struct {
	Host string `toml:"host"`
	Port int64  `toml:"port"`

	// Endpoint paths
	BasePath   string `toml:"base_path"`
	StatusPath string `toml:"status_path"`

	// Skip access log lines for incremental refresh polling
	DisableAccessLogs bool `toml:"disable_access_logs"`

	ReadTimeoutMS  int64 `toml:"read_timeout_ms"`
	WriteTimeoutMS int64 `toml:"write_timeout_ms"`

	TLS       TLSConfig       `toml:"tls"`
	Auth      AuthConfig      `toml:"auth"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	NetAccess NetAccessConfig `toml:"net_access"`
}

type TLSConfig struct {
	Enabled  bool   `toml:"enabled"`
	CertFile string `toml:"cert_file"`
	KeyFile  string `toml:"key_file"`

	// "TLS1.2" or "TLS1.3"
	MinVersion string `toml:"min_version"`
	MaxVersion string `toml:"max_version"`

	// Comma separated cipher suite names, empty for secure defaults
	CipherSuites string `toml:"cipher_suites"`
}

type RateLimitConfig struct {
	Enabled bool `toml:"enabled"`

	// Requests per second per client
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// Burst size (token bucket)
	BurstSize int `toml:"burst_size"`

	// Idle client limiters are dropped after this many seconds
	CleanupIntervalSec int64 `toml:"cleanup_interval_sec"`
}

type NetAccessConfig struct {
	IPWhitelist []string `toml:"ip_whitelist"`
	IPBlacklist []string `toml:"ip_blacklist"`
}
