// FILE: logviewer/src/internal/format/json_test.go
package format

import (
	"encoding/json"
	"strings"
	"testing"

	"logviewer/src/internal/config"
	"logviewer/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() core.FormattedEntry {
	return core.FormattedEntry{
		Number:      3,
		LineRange:   "3-4",
		Level:       core.LevelError,
		Timestamp:   "2025-08-12 10:00:03",
		Content:     "ERROR 2025-08-12 10:00:03 failed",
		FullContent: "ERROR 2025-08-12 10:00:03 failed\n  at main",
		IsMultiline: true,
		LineCount:   2,
		Raw:         "ERROR 2025-08-12 10:00:03 failed\n  at main\n",
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	logger := newTestLogger()
	f, err := NewJSONFormatter(&config.OutputConfig{}, logger)
	require.NoError(t, err)

	output, err := f.Format(sampleEntry())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(output), "\n"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(output, &result))
	assert.Equal(t, "3-4", result["line_range"])
	assert.Equal(t, "ERROR", result["level"])
	assert.Equal(t, true, result["is_multiline"])
	assert.Equal(t, float64(2), result["line_count"])
	_, hasModule := result["module"]
	assert.False(t, hasModule)
}

func TestJSONFormatter_Pretty(t *testing.T) {
	f, err := NewJSONFormatter(&config.OutputConfig{Pretty: true}, newTestLogger())
	require.NoError(t, err)

	output, err := f.Format(sampleEntry())
	require.NoError(t, err)
	assert.Contains(t, string(output), "\n  \"number\": 3")
}

func TestJSONFormatter_FormatBatch(t *testing.T) {
	f, err := NewJSONFormatter(nil, newTestLogger())
	require.NoError(t, err)

	output, err := f.FormatBatch([]core.FormattedEntry{sampleEntry(), sampleEntry()})
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(output, &result))
	assert.Len(t, result, 2)

	empty, err := f.FormatBatch(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))
}
