// FILE: logviewer/src/internal/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"logviewer/src/internal/core"

	lconfig "github.com/lixenwraith/config"
)

const envPrefix = "LOGVIEWER_"

func defaults() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Directory:      "./logs",
			Files:          []string{},
			Title:          "Log Files",
			PageLength:     core.DefaultPageLength,
			MaxReadLines:   core.DefaultMaxReadLines,
			MaxGrowthLines: core.DefaultMaxGrowthLines,
			ReadTimeoutMS:  core.DefaultReadTimeoutMS,
			Filters:        []FilterConfig{},
			Formats:        []FormatConfig{},
			Refresh: RefreshConfig{
				IntervalMS:         1000,
				OnlyWhenActive:     true,
				AutoRefreshDefault: true,
				AutoScrollToBottom: true,
			},
		},
		Output: OutputConfig{
			Format: "text",
		},
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			BasePath:          "/logs",
			StatusPath:        "/status",
			DisableAccessLogs: true,
			ReadTimeoutMS:     10000,
			WriteTimeoutMS:    10000,
			Auth: AuthConfig{
				Type: "none",
			},
			RateLimit: RateLimitConfig{
				Enabled:            false,
				RequestsPerSecond:  10,
				BurstSize:          20,
				CleanupIntervalSec: 60,
			},
		},
		Logging: DefaultLogConfig(),
	}
}

// Load builds the configuration from defaults, the config file,
// LOGVIEWER_* environment variables and "--section.key=value" arguments,
// in increasing order of precedence.
func Load(configPath string, cliArgs []string) (*Config, error) {
	if configPath == "" {
		configPath = GetConfigPath()
	}

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix(envPrefix).
		WithFile(configPath).
		WithArgs(cliArgs).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		if !strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	handleListEnv(cfg)

	finalConfig := &Config{}
	if err := cfg.Scan(finalConfig); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	if err := Validate(finalConfig); err != nil {
		return nil, err
	}
	return finalConfig, nil
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	env = envPrefix + env
	return env
}

// handleListEnv accepts comma separated values for list keys
func handleListEnv(cfg *lconfig.Config) {
	keys := []string{
		"viewer.files",
		"server.auth.bearer.tokens",
		"server.net_access.ip_whitelist",
		"server.net_access.ip_blacklist",
	}

	for _, key := range keys {
		raw := os.Getenv(customEnvTransform(key))
		if raw == "" {
			continue
		}
		values := make([]string, 0)
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
		cfg.Set(key, values)
	}
}

// GetConfigPath resolves the config file location from the environment
func GetConfigPath() string {
	if configFile := os.Getenv("LOGVIEWER_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("LOGVIEWER_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("LOGVIEWER_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "logviewer.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "logviewer.toml")
	}

	return "logviewer.toml"
}
