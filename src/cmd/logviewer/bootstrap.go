// FILE: logviewer/src/cmd/logviewer/bootstrap.go
package main

import (
	"fmt"
	"strings"

	"logviewer/src/internal/config"
	"logviewer/src/internal/service"
	"logviewer/src/internal/version"

	"github.com/lixenwraith/log"
)

// bootstrapServer builds the viewer service and starts its HTTP front end
func bootstrapServer(cfg *config.Config) (*service.Service, *service.HTTPServer, error) {
	svc, err := service.NewService(&cfg.Viewer, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create viewer service: %w", err)
	}

	server, err := service.NewHTTPServer(&cfg.Server, svc, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	if err := server.Start(); err != nil {
		return nil, nil, fmt.Errorf("failed to start HTTP server: %w", err)
	}

	logger.Info("msg", "LogViewer started",
		"version", version.Short(),
		"directory", cfg.Viewer.Directory,
		"files", len(svc.ListFiles().LogFiles))

	Print("LogViewer listening on %s:%d%s/\n", cfg.Server.Host, cfg.Server.Port, strings.TrimSuffix(cfg.Server.BasePath, "/"))

	return svc, server, nil
}

// initializeLogger sets up the logger based on configuration
func initializeLogger(cfg *config.Config) error {
	logger = log.NewLogger()
	return logger.InitWithDefaults(loggerArgs(cfg)...)
}

// loggerArgs translates logging config into lixenwraith/log overrides
func loggerArgs(cfg *config.Config) []string {
	if cfg.Quiet {
		return []string{"disable_file=true", "enable_stdout=false", "level=255"}
	}

	var configArgs []string

	// Validation has already rejected unknown levels
	levelValue, _ := parseLogLevel(cfg.Logging.Level)
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_stdout=false")
	case "stdout":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stdout")
	case "stderr":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stderr")
	case "file":
		configArgs = append(configArgs, "enable_stdout=false")
		configArgs = append(configArgs, fileLoggingArgs(&cfg.Logging.File)...)
	case "both":
		configArgs = append(configArgs, "enable_stdout=true")
		configArgs = append(configArgs, fileLoggingArgs(&cfg.Logging.File)...)
		configArgs = append(configArgs, consoleTargetArgs(&cfg.Logging.Console)...)
	}

	if cfg.Logging.Console.Format != "" {
		configArgs = append(configArgs, fmt.Sprintf("format=%s", cfg.Logging.Console.Format))
	}

	return configArgs
}

func fileLoggingArgs(file *config.LogFileConfig) []string {
	args := []string{
		fmt.Sprintf("directory=%s", file.Directory),
		fmt.Sprintf("name=%s", file.Name),
		fmt.Sprintf("max_size_mb=%d", file.MaxSizeMB),
		fmt.Sprintf("max_total_size_mb=%d", file.MaxTotalSizeMB),
	}
	if file.RetentionHours > 0 {
		args = append(args, fmt.Sprintf("retention_period_hrs=%.1f", file.RetentionHours))
	}
	return args
}

func consoleTargetArgs(console *config.LogConsoleConfig) []string {
	target := console.Target
	if target == "" {
		target = "stderr"
	}
	if target == "split" {
		return []string{"stdout_split_mode=true", "stdout_target=split"}
	}
	return []string{fmt.Sprintf("stdout_target=%s", target)}
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
