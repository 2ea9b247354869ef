// FILE: logviewer/src/internal/tls/server.go
package tls

import (
	"crypto/tls"
	"fmt"

	"logviewer/src/internal/config"

	"github.com/lixenwraith/log"
)

// ServerManager holds the TLS configuration of the HTTP server
type ServerManager struct {
	config    *config.TLSConfig
	tlsConfig *tls.Config
	logger    *log.Logger
}

// NewServerManager loads the server key pair. Returns nil when TLS is disabled.
func NewServerManager(cfg *config.TLSConfig, logger *log.Logger) (*ServerManager, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load server cert/key: %w", err)
	}

	m := &ServerManager{
		config: cfg,
		logger: logger,
		tlsConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   parseTLSVersion(cfg.MinVersion, tls.VersionTLS12),
			MaxVersion:   parseTLSVersion(cfg.MaxVersion, tls.VersionTLS13),
		},
	}

	if cfg.CipherSuites != "" {
		m.tlsConfig.CipherSuites = parseCipherSuites(cfg.CipherSuites)
	} else {
		m.tlsConfig.CipherSuites = []uint16{
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
		}
	}

	logger.Info("msg", "TLS server manager initialized",
		"component", "tls",
		"min_version", tlsVersionString(m.tlsConfig.MinVersion))
	return m, nil
}

// GetHTTPConfig returns a copy of the TLS configuration for the HTTP server
func (m *ServerManager) GetHTTPConfig() *tls.Config {
	if m == nil {
		return nil
	}
	cfg := m.tlsConfig.Clone()
	cfg.NextProtos = []string{"http/1.1"}
	return cfg
}

// GetStats returns statistics about the server TLS configuration
func (m *ServerManager) GetStats() map[string]any {
	if m == nil {
		return map[string]any{"enabled": false}
	}
	return map[string]any{
		"enabled":       true,
		"min_version":   tlsVersionString(m.tlsConfig.MinVersion),
		"max_version":   tlsVersionString(m.tlsConfig.MaxVersion),
		"cipher_suites": len(m.tlsConfig.CipherSuites),
	}
}
