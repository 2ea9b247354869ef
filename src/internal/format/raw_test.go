// FILE: logviewer/src/internal/format/raw_test.go
package format

import (
	"testing"

	"logviewer/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawFormatter_Format(t *testing.T) {
	f, err := NewRawFormatter(newTestLogger())
	require.NoError(t, err)

	output, err := f.Format(sampleEntry())
	require.NoError(t, err)
	assert.Equal(t, sampleEntry().Raw, string(output))

	output, err = f.Format(core.FormattedEntry{Raw: "no newline"})
	require.NoError(t, err)
	assert.Equal(t, "no newline\n", string(output))
}
