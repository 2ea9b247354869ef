// FILE: logviewer/src/internal/config/config_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := defaults()
	cfg.Viewer.Files = []string{"django.log", "celery.log"}
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(defaults()))
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		section string
		message string
	}{
		{
			name:    "BadExcludePattern",
			mutate:  func(c *Config) { c.Viewer.ExcludePattern = "([a-z" },
			section: "viewer",
			message: "exclude_pattern",
		},
		{
			name:    "TraversalFileName",
			mutate:  func(c *Config) { c.Viewer.Files = []string{"../etc/passwd"} },
			section: "viewer",
			message: "path separators",
		},
		{
			name:    "DotDotFileName",
			mutate:  func(c *Config) { c.Viewer.Files = []string{".."} },
			section: "viewer",
			message: "invalid file name",
		},
		{
			name:    "EmptyDirectory",
			mutate:  func(c *Config) { c.Viewer.Directory = "" },
			section: "viewer",
			message: "directory",
		},
		{
			name:    "ZeroPageLength",
			mutate:  func(c *Config) { c.Viewer.PageLength = 0 },
			section: "viewer",
			message: "page_length",
		},
		{
			name:    "ZeroMaxReadLines",
			mutate:  func(c *Config) { c.Viewer.MaxReadLines = 0 },
			section: "viewer",
			message: "max_read_lines",
		},
		{
			name:    "BadFilesPattern",
			mutate:  func(c *Config) { c.Viewer.FilesPattern = "[" },
			section: "viewer",
			message: "files_pattern",
		},
		{
			name: "BadFilterRegex",
			mutate: func(c *Config) {
				c.Viewer.Filters = []FilterConfig{{Type: FilterTypeExclude, Patterns: []string{"ok", "("}}}
			},
			section: "viewer",
			message: "filter[0] pattern[1]",
		},
		{
			name: "BadFilterType",
			mutate: func(c *Config) {
				c.Viewer.Filters = []FilterConfig{{Type: "drop"}}
			},
			section: "viewer",
			message: "invalid type",
		},
		{
			name: "BadFormatRegex",
			mutate: func(c *Config) {
				c.Viewer.Formats = []FormatConfig{{Name: "x", Pattern: "(?P<level"}}
			},
			section: "viewer",
			message: "format 'x'",
		},
		{
			name: "DuplicateFormat",
			mutate: func(c *Config) {
				c.Viewer.Formats = []FormatConfig{{Name: "x", Pattern: "a"}, {Name: "x", Pattern: "b"}}
			},
			section: "viewer",
			message: "duplicate name",
		},
		{
			name:    "UnknownDefaultFormat",
			mutate:  func(c *Config) { c.Viewer.DefaultFormat = "nginx" },
			section: "viewer",
			message: "default_format",
		},
		{
			name:    "UnknownOutputFormat",
			mutate:  func(c *Config) { c.Output.Format = "yaml" },
			section: "output",
			message: "unknown format",
		},
		{
			name:    "BasePathWithoutSlash",
			mutate:  func(c *Config) { c.Server.BasePath = "logs" },
			section: "server",
			message: "base_path",
		},
		{
			name:    "StatusUnderBase",
			mutate:  func(c *Config) { c.Server.StatusPath = "/logs/status" },
			section: "server",
			message: "conflicts",
		},
		{
			name:    "UnknownAuthType",
			mutate:  func(c *Config) { c.Server.Auth.Type = "mtls" },
			section: "server",
			message: "invalid auth type",
		},
		{
			name:    "BasicWithoutUsers",
			mutate:  func(c *Config) { c.Server.Auth.Type = "basic" },
			section: "server",
			message: "basic auth requires",
		},
		{
			name:    "BearerWithoutTokens",
			mutate:  func(c *Config) { c.Server.Auth.Type = "bearer" },
			section: "server",
			message: "bearer auth requires",
		},
		{
			name: "BadRateLimit",
			mutate: func(c *Config) {
				c.Server.RateLimit.Enabled = true
				c.Server.RateLimit.RequestsPerSecond = 0
			},
			section: "server",
			message: "requests_per_second",
		},
		{
			name:    "BadWhitelist",
			mutate:  func(c *Config) { c.Server.NetAccess.IPWhitelist = []string{"10.0.0.0/33"} },
			section: "server",
			message: "whitelist",
		},
		{
			name:    "TLSWithoutFiles",
			mutate:  func(c *Config) { c.Server.TLS.Enabled = true },
			section: "server",
			message: "cert_file",
		},
		{
			name:    "BadLogLevel",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			section: "logging",
			message: "invalid log level",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.section, cfgErr.Section)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestValidate_NetAccessEntries(t *testing.T) {
	cfg := validConfig()
	cfg.Server.NetAccess.IPWhitelist = []string{"10.0.0.0/8", "192.168.1.10"}
	cfg.Server.NetAccess.IPBlacklist = []string{"10.0.0.5"}
	assert.NoError(t, Validate(cfg))
}

func TestGetConfigPath(t *testing.T) {
	t.Run("AbsoluteFile", func(t *testing.T) {
		t.Setenv("LOGVIEWER_CONFIG_FILE", "/etc/logviewer/custom.toml")
		t.Setenv("LOGVIEWER_CONFIG_DIR", "/ignored")
		assert.Equal(t, "/etc/logviewer/custom.toml", GetConfigPath())
	})

	t.Run("RelativeFileWithDir", func(t *testing.T) {
		t.Setenv("LOGVIEWER_CONFIG_FILE", "custom.toml")
		t.Setenv("LOGVIEWER_CONFIG_DIR", "/opt/conf")
		assert.Equal(t, filepath.Join("/opt/conf", "custom.toml"), GetConfigPath())
	})

	t.Run("DirOnly", func(t *testing.T) {
		t.Setenv("LOGVIEWER_CONFIG_FILE", "")
		t.Setenv("LOGVIEWER_CONFIG_DIR", "/opt/conf")
		assert.Equal(t, filepath.Join("/opt/conf", "logviewer.toml"), GetConfigPath())
	})
}

func TestCustomEnvTransform(t *testing.T) {
	assert.Equal(t, "LOGVIEWER_VIEWER_PAGE_LENGTH", customEnvTransform("viewer.page_length"))
	assert.Equal(t, "LOGVIEWER_SERVER_RATE_LIMIT_ENABLED", customEnvTransform("server.rate_limit.enabled"))
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logviewer.toml")
	content := `
[viewer]
directory = "/var/log/app"
files = ["django.log"]
page_length = 50
exclude_pattern = "healthz"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/var/log/app", cfg.Viewer.Directory)
	assert.Equal(t, []string{"django.log"}, cfg.Viewer.Files)
	assert.Equal(t, 50, cfg.Viewer.PageLength)
	assert.Equal(t, "healthz", cfg.Viewer.ExcludePattern)
	// Untouched keys keep their defaults
	assert.Equal(t, 1000, cfg.Viewer.MaxReadLines)
	assert.Equal(t, "/logs", cfg.Server.BasePath)
}

func TestLoad_InvalidPatternFailsFast(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logviewer.toml")
	content := `
[viewer]
directory = "/var/log/app"
exclude_pattern = "(unclosed"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path, nil)
	assert.Nil(t, cfg)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "viewer", cfgErr.Section)
}

func TestEncodeTOML_RoundTrip(t *testing.T) {
	cfg := validConfig()
	cfg.Viewer.Formats = []FormatConfig{{Name: "celery", Pattern: `(?P<level>\w+)`, Files: []string{"celery*.log"}}}
	cfg.Quiet = true

	data, err := cfg.EncodeTOML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")

	path := filepath.Join(t.TempDir(), "logviewer.toml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.Viewer.Files, loaded.Viewer.Files)
	assert.Equal(t, cfg.Viewer.Formats, loaded.Viewer.Formats)
	assert.Equal(t, cfg.Server.Port, loaded.Server.Port)
	assert.False(t, loaded.Quiet)
}

func TestSaveToFile_EmptyPath(t *testing.T) {
	assert.Error(t, validConfig().SaveToFile(""))
}
