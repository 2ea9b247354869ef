// FILE: logviewer/src/cmd/logviewer/main_test.go
package main

import (
	"testing"

	"logviewer/src/internal/config"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		fc, err := splitArgs(nil)
		require.NoError(t, err)
		assert.Empty(t, fc.ConfigFile)
		assert.Empty(t, fc.Overrides)
	})

	t.Run("Mixed", func(t *testing.T) {
		fc, err := splitArgs([]string{
			"-c", "/etc/logviewer.toml",
			"-q",
			"--server.port=9090",
			"--viewer.directory", "/var/log/app",
			"--server.disable_access_logs",
		})
		require.NoError(t, err)
		assert.Equal(t, "/etc/logviewer.toml", fc.ConfigFile)
		assert.True(t, fc.Quiet)
		assert.False(t, fc.ShowVersion)
		assert.Equal(t, []string{
			"--server.port=9090",
			"--viewer.directory=/var/log/app",
			"--server.disable_access_logs=true",
		}, fc.Overrides)
	})

	t.Run("ConfigEquals", func(t *testing.T) {
		fc, err := splitArgs([]string{"--config=a.toml", "--version"})
		require.NoError(t, err)
		assert.Equal(t, "a.toml", fc.ConfigFile)
		assert.True(t, fc.ShowVersion)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := splitArgs([]string{"-c"})
		assert.Error(t, err)
		_, err = splitArgs([]string{"--bogus"})
		assert.ErrorContains(t, err, "unknown argument")
	})
}

func TestParseLogLevel(t *testing.T) {
	for level, want := range map[string]int{
		"debug":   int(log.LevelDebug),
		"INFO":    int(log.LevelInfo),
		"warning": int(log.LevelWarn),
		"error":   int(log.LevelError),
	} {
		got, err := parseLogLevel(level)
		require.NoError(t, err, level)
		assert.Equal(t, want, got, level)
	}

	_, err := parseLogLevel("trace")
	assert.Error(t, err)
}

func TestLoggerArgs(t *testing.T) {
	cfg := &config.Config{Logging: config.DefaultLogConfig()}

	t.Run("Quiet", func(t *testing.T) {
		quiet := *cfg
		quiet.Quiet = true
		assert.Equal(t, []string{"disable_file=true", "enable_stdout=false", "level=255"}, loggerArgs(&quiet))
	})

	t.Run("Stderr", func(t *testing.T) {
		args := loggerArgs(cfg)
		assert.Contains(t, args, "stdout_target=stderr")
		assert.Contains(t, args, "disable_file=true")
		assert.Contains(t, args, "format=txt")
	})

	t.Run("BothSplit", func(t *testing.T) {
		both := *cfg
		both.Logging.Output = "both"
		both.Logging.Console.Target = "split"
		args := loggerArgs(&both)
		assert.Contains(t, args, "enable_stdout=true")
		assert.Contains(t, args, "stdout_split_mode=true")
		assert.Contains(t, args, "name=logviewer")
		assert.Contains(t, args, "retention_period_hrs=168.0")
	})
}
