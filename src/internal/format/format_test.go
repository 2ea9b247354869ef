// FILE: logviewer/src/internal/format/format_test.go
package format

import (
	"testing"

	"logviewer/src/internal/config"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func TestNewFormatter(t *testing.T) {
	logger := newTestLogger()

	testCases := []struct {
		name        string
		formatName  string
		expected    string
		expectError bool
	}{
		{name: "JSONFormatter", formatName: "json", expected: "json"},
		{name: "TextFormatter", formatName: "text", expected: "text"},
		{name: "TxtAlias", formatName: "txt", expected: "text"},
		{name: "RawFormatter", formatName: "raw", expected: "raw"},
		{name: "DefaultIsText", formatName: "", expected: "text"},
		{name: "Unknown", formatName: "xml", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := New(&config.OutputConfig{Format: tc.formatName}, logger)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, f.Name())
		})
	}

	t.Run("NilConfig", func(t *testing.T) {
		f, err := New(nil, logger)
		require.NoError(t, err)
		assert.Equal(t, "text", f.Name())
	})
}
