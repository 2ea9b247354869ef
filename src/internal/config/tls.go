// FILE: logviewer/src/internal/config/tls.go
package config

import (
	"fmt"
	"os"
	"strings"
)

func validateTLS(cfg *TLSConfig) error {
	if !cfg.Enabled {
		return nil
	}

	if cfg.CertFile == "" || cfg.KeyFile == "" {
		return fmt.Errorf("TLS enabled but cert_file or key_file not specified")
	}

	if _, err := os.Stat(cfg.CertFile); err != nil {
		return fmt.Errorf("cert file not found: %w", err)
	}
	if _, err := os.Stat(cfg.KeyFile); err != nil {
		return fmt.Errorf("key file not found: %w", err)
	}

	for _, v := range []string{cfg.MinVersion, cfg.MaxVersion} {
		switch strings.ToUpper(v) {
		case "", "TLS1.2", "TLS12", "TLS1.3", "TLS13":
		default:
			return fmt.Errorf("unsupported TLS version: %s", v)
		}
	}

	return nil
}
