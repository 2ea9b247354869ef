// FILE: logviewer/src/cmd/logviewer/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"logviewer/src/cmd/logviewer/commands"
	"logviewer/src/internal/config"
	"logviewer/src/internal/version"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

func main() {
	// Subcommands run to completion and exit
	router := commands.NewCommandRouter()
	handled, err := router.Route(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if handled {
		os.Exit(0)
	}

	flagCfg, err := splitArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	InitOutputHandler(flagCfg.Quiet)

	if flagCfg.ShowVersion {
		Print("%s\n", version.String())
		os.Exit(0)
	}

	cfg, err := config.Load(flagCfg.ConfigFile, flagCfg.Overrides)
	if err != nil {
		if flagCfg.ConfigFile != "" && strings.Contains(err.Error(), "not found") {
			FatalError(2, "Config file not found: %s\n", flagCfg.ConfigFile)
		}
		FatalError(1, "Failed to load config: %v\n", err)
	}
	cfg.Quiet = flagCfg.Quiet

	if err := initializeLogger(cfg); err != nil {
		FatalError(1, "Failed to initialize logger: %v\n", err)
	}
	defer shutdownLogger()

	logger.Info("msg", "LogViewer starting",
		"version", version.String(),
		"config_file", flagCfg.ConfigFile,
		"log_output", cfg.Logging.Output)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	svc, server, err := bootstrapServer(cfg)
	if err != nil {
		logger.Error("msg", "Failed to bootstrap server", "error", err)
		Error("Failed to start: %v\n", err)
		shutdownLogger()
		os.Exit(1)
	}

	if enableStatusReporter() {
		go statusReporter(ctx, svc, server)
	}

	sig := <-sigChan
	logger.Info("msg", "Shutdown signal received, starting graceful shutdown...",
		"signal", sig.String())
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	done := make(chan struct{})
	go func() {
		server.Stop()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("msg", "Shutdown complete")
	case <-shutdownCtx.Done():
		logger.Error("msg", "Shutdown timeout exceeded - forcing exit")
		shutdownLogger()
		os.Exit(1)
	}
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			Error("Logger shutdown error: %v\n", err)
		}
	}
}

func enableStatusReporter() bool {
	return os.Getenv("LOGVIEWER_DISABLE_STATUS_REPORTER") != "1"
}
