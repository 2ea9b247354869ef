// FILE: logviewer/src/cmd/logviewer/status.go
package main

import (
	"context"
	"time"

	"logviewer/src/internal/service"
)

const statusInterval = 30 * time.Second

// Periodically logs read and request counters
func statusReporter(ctx context.Context, svc *service.Service, server *service.HTTPServer) {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reportStatus(svc, server)
		}
	}
}

func reportStatus(svc *service.Service, server *service.HTTPServer) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("msg", "Panic in status reporter",
				"component", "status_reporter",
				"panic", r)
		}
	}()

	if svc == nil || server == nil {
		logger.Warn("msg", "Status reporter: nothing to report",
			"component", "status_reporter")
		return
	}

	fields := []any{
		"msg", "Status report",
		"component", "status_reporter",
	}
	fields = appendStats(fields, svc.GetStats(),
		"files", "total_reads", "read_errors", "not_found", "truncations")
	fields = appendStats(fields, server.GetStats(),
		"total_requests", "auth_failures", "ip_denied", "rate_limited")

	logger.Debug(fields...)
}

// appendStats copies the named keys that are present in stats
func appendStats(fields []any, stats map[string]any, keys ...string) []any {
	for _, key := range keys {
		if v, ok := stats[key]; ok {
			fields = append(fields, key, v)
		}
	}
	return fields
}
