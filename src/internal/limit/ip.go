// FILE: logviewer/src/internal/limit/ip.go
package limit

import (
	"net"
	"strings"

	"logviewer/src/internal/config"

	"github.com/lixenwraith/log"
)

// IPChecker handles IP-based access control lists
type IPChecker struct {
	ipWhitelist []*net.IPNet
	ipBlacklist []*net.IPNet
	logger      *log.Logger
}

// NewIPChecker creates a new IPChecker. Returns nil if no rules are defined.
func NewIPChecker(cfg *config.NetAccessConfig, logger *log.Logger) *IPChecker {
	if cfg == nil || (len(cfg.IPWhitelist) == 0 && len(cfg.IPBlacklist) == 0) {
		return nil
	}

	c := &IPChecker{
		ipWhitelist: parseRules(cfg.IPWhitelist, "whitelist", logger),
		ipBlacklist: parseRules(cfg.IPBlacklist, "blacklist", logger),
		logger:      logger,
	}

	logger.Info("msg", "IP checker initialized",
		"component", "ip_checker",
		"whitelist_rules", len(c.ipWhitelist),
		"blacklist_rules", len(c.ipBlacklist))

	return c
}

// parseRules accepts CIDR blocks and plain IPv4/IPv6 addresses
func parseRules(entries []string, list string, logger *log.Logger) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)

		if strings.Contains(entry, "/") {
			_, ipNet, err := net.ParseCIDR(entry)
			if err != nil {
				logger.Warn("msg", "Skipping invalid IP "+list+" entry",
					"component", "ip_checker",
					"entry", entry,
					"error", err)
				continue
			}
			nets = append(nets, ipNet)
			continue
		}

		ip := net.ParseIP(entry)
		if ip == nil {
			logger.Warn("msg", "Skipping invalid IP "+list+" entry",
				"component", "ip_checker",
				"entry", entry)
			continue
		}
		if ip4 := ip.To4(); ip4 != nil {
			nets = append(nets, &net.IPNet{IP: ip4, Mask: net.CIDRMask(32, 32)})
		} else {
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(128, 128)})
		}
	}
	return nets
}

// IsAllowed validates if a remote address is permitted
func (c *IPChecker) IsAllowed(remoteAddr net.Addr) bool {
	if c == nil {
		return true
	}

	var ipStr string
	switch addr := remoteAddr.(type) {
	case *net.TCPAddr:
		ipStr = addr.IP.String()
	case *net.UDPAddr:
		ipStr = addr.IP.String()
	default:
		ipStr = hostOf(remoteAddr.String())
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		c.logger.Warn("msg", "Could not parse remote address to IP",
			"component", "ip_checker",
			"remote_addr", remoteAddr.String())
		return false
	}

	// Deny takes precedence
	for _, ipNet := range c.ipBlacklist {
		if ipNet.Contains(ip) {
			c.logger.Warn("msg", "Blacklisted IP denied",
				"component", "ip_checker",
				"ip", ipStr,
				"rule", ipNet.String())
			return false
		}
	}

	if len(c.ipWhitelist) > 0 {
		for _, ipNet := range c.ipWhitelist {
			if ipNet.Contains(ip) {
				return true
			}
		}
		c.logger.Warn("msg", "IP not in whitelist",
			"component", "ip_checker",
			"ip", ipStr)
		return false
	}

	return true
}

// GetStats returns IP checker statistics
func (c *IPChecker) GetStats() map[string]any {
	if c == nil {
		return map[string]any{"enabled": false}
	}

	return map[string]any{
		"enabled":         true,
		"whitelist_rules": len(c.ipWhitelist),
		"blacklist_rules": len(c.ipBlacklist),
	}
}

func hostOf(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
