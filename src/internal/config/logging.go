// FILE: logviewer/src/internal/config/logging.go
package config

import "fmt"

// LogConfig controls the application's own logging
type LogConfig struct {
	// Output mode: "file", "stdout", "stderr", "both", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`

	File    LogFileConfig    `toml:"file"`
	Console LogConsoleConfig `toml:"console"`
}

type LogFileConfig struct {
	Directory string `toml:"directory"`

	// Base name for log files
	Name string `toml:"name"`

	MaxSizeMB      int64 `toml:"max_size_mb"`
	MaxTotalSizeMB int64 `toml:"max_total_size_mb"`

	// Log retention in hours (0 = disabled)
	RetentionHours float64 `toml:"retention_hours"`
}

type LogConsoleConfig struct {
	// Target for console output: "stdout", "stderr", "split"
	Target string `toml:"target"`

	// Format: "txt" or "json"
	Format string `toml:"format"`
}

// DefaultLogConfig returns logging defaults
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Output: "stderr",
		Level:  "info",
		File: LogFileConfig{
			Directory:      "./log",
			Name:           "logviewer",
			MaxSizeMB:      100,
			MaxTotalSizeMB: 1000,
			RetentionHours: 168, // 7 days
		},
		Console: LogConsoleConfig{
			Target: "stderr",
			Format: "txt",
		},
	}
}

func validateLogConfig(cfg *LogConfig) error {
	validOutputs := map[string]bool{
		"file": true, "stdout": true, "stderr": true,
		"both": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	validTargets := map[string]bool{
		"stdout": true, "stderr": true, "split": true, "": true,
	}
	if !validTargets[cfg.Console.Target] {
		return fmt.Errorf("invalid console target: %s", cfg.Console.Target)
	}

	validFormats := map[string]bool{
		"txt": true, "json": true, "": true,
	}
	if !validFormats[cfg.Console.Format] {
		return fmt.Errorf("invalid console format: %s", cfg.Console.Format)
	}

	return nil
}
