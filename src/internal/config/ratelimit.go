// FILE: logviewer/src/internal/config/ratelimit.go
package config

import (
	"fmt"
	"net"
	"strings"
)

func validateNetAccess(cfg *NetAccessConfig) error {
	for _, entry := range cfg.IPWhitelist {
		if !validIPEntry(entry) {
			return fmt.Errorf("invalid IP whitelist entry: %s", entry)
		}
	}

	for _, entry := range cfg.IPBlacklist {
		if !validIPEntry(entry) {
			return fmt.Errorf("invalid IP blacklist entry: %s", entry)
		}
	}

	return nil
}

func validIPEntry(entry string) bool {
	if strings.Contains(entry, "/") {
		_, _, err := net.ParseCIDR(entry)
		return err == nil
	}
	return net.ParseIP(entry) != nil
}

func validateRateLimit(cfg *RateLimitConfig) error {
	if !cfg.Enabled {
		return nil
	}

	if cfg.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate limit requests_per_second must be positive")
	}

	if cfg.BurstSize < 1 {
		return fmt.Errorf("rate limit burst_size must be at least 1")
	}

	if cfg.CleanupIntervalSec < 0 {
		return fmt.Errorf("rate limit cleanup_interval_sec cannot be negative")
	}

	return nil
}
